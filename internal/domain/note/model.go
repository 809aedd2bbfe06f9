package note

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the ISO form note dates are stored in.
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrEmptyID      = errors.New("note id cannot be empty")
	ErrEmptyTitle   = errors.New("note title cannot be empty")
	ErrEmptyContent = errors.New("note content cannot be empty")
)

// Note is one studio log entry. Content is raw markdown in the subset
// grammar the renderer understands; Date is free-form text, normally an
// ISO date but never rejected.
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Validate checks if the Note has valid data.
// PRE: Note struct is populated
// POST: Returns nil if valid, error otherwise
func (n *Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// ParsedDate parses Date in the ISO layout. The second return is false
// for free-form date text.
func (n *Note) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, n.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
