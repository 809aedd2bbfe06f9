package profile

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 120
	MaxBioLength  = 2000
)

// Domain errors
var (
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrEmptyTitle  = errors.New("title cannot be empty")
	ErrNameTooLong = errors.New("name cannot exceed 120 characters")
	ErrBioTooLong  = errors.New("bio cannot exceed 2000 characters")
)

// Socials holds the three fixed external links shown on the profile.
type Socials struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	X        string `json:"x"`
}

// Profile is the single site owner identity. There is exactly one; edits
// overwrite it whole. Avatar is either empty (the UI shows a placeholder)
// or a normalized JPEG data URI.
type Profile struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Bio      string  `json:"bio"`
	Location string  `json:"location"`
	Avatar   string  `json:"avatar,omitempty"`
	Socials  Socials `json:"socials"`
}

// Validate checks if the Profile has valid data.
// PRE: Profile struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if len(p.Bio) > MaxBioLength {
		return ErrBioTooLong
	}
	return nil
}
