package gallery

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyID    = errors.New("gallery item id cannot be empty")
	ErrEmptyTitle = errors.New("gallery item title cannot be empty")
	ErrNoImage    = errors.New("gallery item needs an image or a placeholder label")
)

// dataURIPrefix marks an Image value as an embedded, normalized upload
// rather than a placeholder label.
const dataURIPrefix = "data:image/"

// Item is one gallery entry. Image holds either a normalized JPEG data
// URI (an actual upload) or a short placeholder label rendered as a
// stylized card.
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Image  string `json:"image"`
	Link   string `json:"link,omitempty"`
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (it *Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(it.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(it.Image) == "" {
		return ErrNoImage
	}
	return nil
}

// HasEmbeddedImage reports whether Image carries an actual uploaded image
// rather than a placeholder label.
func (it *Item) HasEmbeddedImage() bool {
	return strings.HasPrefix(it.Image, dataURIPrefix)
}
