package gallery

import (
	"context"

	domain "studiolog/internal/domain/gallery"
)

// Store persists the ordered gallery collection. The collection is read
// and written whole; item order is insertion order with new items at the
// front.
type Store interface {
	// List returns all items, or the built-in defaults when nothing has
	// been stored (or the stored blob is corrupt).
	List(ctx context.Context) ([]domain.Item, error)
	// Replace overwrites the whole collection.
	Replace(ctx context.Context, items []domain.Item) error
	// Exists reports whether a gallery blob is present at all.
	Exists(ctx context.Context) (bool, error)
}
