package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"studiolog/internal/domain/gallery"
)

// GalleryStoreForOrchestrator defines the store interface needed by
// gallery orchestrators.
type GalleryStoreForOrchestrator interface {
	List(ctx context.Context) ([]gallery.Item, error)
	Replace(ctx context.Context, items []gallery.Item) error
}

var ErrGalleryItemNotFound = errors.New("gallery item not found")

// --- Create ---

// CreateGalleryItemInput carries input for the create orchestrator.
// Image is either a normalized data URI or a placeholder label; creation
// without one is rejected.
type CreateGalleryItemInput struct {
	Title  string
	Detail string
	Image  string
	Link   string
}

// CreateGalleryItemDeps holds dependencies for CreateGalleryItem.
type CreateGalleryItemDeps struct {
	GalleryStore GalleryStoreForOrchestrator
	GenerateID   func() string
}

// ExecuteCreateGalleryItem prepends a new item to the collection.
// PRE: Title and Image must be non-empty
// POST: Item persisted at the front with a fresh ID; collection unchanged
// on validation error
func ExecuteCreateGalleryItem(ctx context.Context, input CreateGalleryItemInput, deps CreateGalleryItemDeps) (gallery.Item, error) {
	item := gallery.Item{
		ID:     deps.GenerateID(),
		Title:  input.Title,
		Detail: input.Detail,
		Image:  input.Image,
		Link:   input.Link,
	}
	if err := item.Validate(); err != nil {
		return gallery.Item{}, err
	}

	items, err := deps.GalleryStore.List(ctx)
	if err != nil {
		return gallery.Item{}, err
	}
	items = append([]gallery.Item{item}, items...)
	if err := deps.GalleryStore.Replace(ctx, items); err != nil {
		return gallery.Item{}, err
	}

	slog.Info("content_event", "event", "gallery_item_created", "item_id", item.ID, "title", item.Title)
	return item, nil
}

// --- Update ---

// UpdateGalleryItemInput carries input for the update orchestrator.
// An empty Image keeps the item's existing image.
type UpdateGalleryItemInput struct {
	ID     string
	Title  string
	Detail string
	Image  string
	Link   string
}

// UpdateGalleryItemDeps holds dependencies for UpdateGalleryItem.
type UpdateGalleryItemDeps struct {
	GalleryStore GalleryStoreForOrchestrator
}

// ExecuteUpdateGalleryItem replaces the item at its existing position.
// The item keeps its ID and its place in the collection; it does not move
// to the front.
// PRE: input.ID names an existing item
// POST: Item replaced in place, or collection unchanged on error
func ExecuteUpdateGalleryItem(ctx context.Context, input UpdateGalleryItemInput, deps UpdateGalleryItemDeps) (gallery.Item, error) {
	items, err := deps.GalleryStore.List(ctx)
	if err != nil {
		return gallery.Item{}, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == input.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return gallery.Item{}, ErrGalleryItemNotFound
	}

	updated := gallery.Item{
		ID:     input.ID,
		Title:  input.Title,
		Detail: input.Detail,
		Image:  input.Image,
		Link:   input.Link,
	}
	if updated.Image == "" {
		updated.Image = items[idx].Image
	}
	if err := updated.Validate(); err != nil {
		return gallery.Item{}, err
	}

	items[idx] = updated
	if err := deps.GalleryStore.Replace(ctx, items); err != nil {
		return gallery.Item{}, err
	}

	slog.Info("content_event", "event", "gallery_item_updated", "item_id", updated.ID)
	return updated, nil
}

// --- Remove ---

// RemoveGalleryItemDeps holds dependencies for RemoveGalleryItem.
type RemoveGalleryItemDeps struct {
	GalleryStore GalleryStoreForOrchestrator
}

// ExecuteRemoveGalleryItem deletes one item by ID.
// PRE: id names an existing item
// POST: Item is gone; remaining order is preserved
func ExecuteRemoveGalleryItem(ctx context.Context, id string, deps RemoveGalleryItemDeps) error {
	items, err := deps.GalleryStore.List(ctx)
	if err != nil {
		return err
	}

	kept := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrGalleryItemNotFound
	}

	if err := deps.GalleryStore.Replace(ctx, kept); err != nil {
		return err
	}

	slog.Info("content_event", "event", "gallery_item_removed", "item_id", id)
	return nil
}
