package gallery

import (
	"context"

	"studiolog/internal/adapters/storage/kv"
	domain "studiolog/internal/domain/gallery"
)

// KVStore implements Store over the key-value adapter.
type KVStore struct {
	kv kv.Store
}

// NewKVStore creates a new KVStore.
func NewKVStore(s kv.Store) *KVStore {
	return &KVStore{kv: s}
}

// List retrieves all gallery items in stored order.
// POST: Returns stored items, or the defaults when absent or corrupt
func (s *KVStore) List(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyGallery, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.Defaults(), nil
	}
	return items, nil
}

// Replace overwrites the whole collection.
// PRE: items have been validated
// POST: Collection is persisted in the given order
func (s *KVStore) Replace(ctx context.Context, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	return kv.SaveJSON(ctx, s.kv, kv.KeyGallery, items)
}

// Exists reports whether a gallery blob is stored.
func (s *KVStore) Exists(ctx context.Context) (bool, error) {
	_, found, err := s.kv.Get(ctx, kv.KeyGallery)
	return found, err
}
