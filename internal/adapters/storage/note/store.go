package note

import (
	"context"

	domain "studiolog/internal/domain/note"
)

// Store persists the ordered note collection, read and written whole.
type Store interface {
	// List returns all notes, or the built-in defaults when nothing has
	// been stored (or the stored blob is corrupt).
	List(ctx context.Context) ([]domain.Note, error)
	// Replace overwrites the whole collection.
	Replace(ctx context.Context, notes []domain.Note) error
	// Exists reports whether a notes blob is present at all.
	Exists(ctx context.Context) (bool, error)
}
