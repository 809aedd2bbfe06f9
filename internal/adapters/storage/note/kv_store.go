package note

import (
	"context"

	"studiolog/internal/adapters/storage/kv"
	domain "studiolog/internal/domain/note"
)

// KVStore implements Store over the key-value adapter.
type KVStore struct {
	kv kv.Store
}

// NewKVStore creates a new KVStore.
func NewKVStore(s kv.Store) *KVStore {
	return &KVStore{kv: s}
}

// List retrieves all notes in stored order.
// POST: Returns stored notes, or the defaults when absent or corrupt
func (s *KVStore) List(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyNotes, &notes)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.Defaults(), nil
	}
	return notes, nil
}

// Replace overwrites the whole collection.
// PRE: notes have been validated
// POST: Collection is persisted in the given order
func (s *KVStore) Replace(ctx context.Context, notes []domain.Note) error {
	if notes == nil {
		notes = []domain.Note{}
	}
	return kv.SaveJSON(ctx, s.kv, kv.KeyNotes, notes)
}

// Exists reports whether a notes blob is stored.
func (s *KVStore) Exists(ctx context.Context) (bool, error) {
	_, found, err := s.kv.Get(ctx, kv.KeyNotes)
	return found, err
}
