package profile

import (
	"context"

	"studiolog/internal/adapters/storage/kv"
	domain "studiolog/internal/domain/profile"
)

// KVStore implements Store over the key-value adapter.
type KVStore struct {
	kv kv.Store
}

// NewKVStore creates a new KVStore.
func NewKVStore(s kv.Store) *KVStore {
	return &KVStore{kv: s}
}

// Get retrieves the profile.
// POST: Returns the stored profile, or the default when absent or corrupt
func (s *KVStore) Get(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyProfile, &p)
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return domain.Default(), nil
	}
	return p, nil
}

// Save overwrites the profile in place.
// PRE: p has been validated
// POST: Profile is persisted
func (s *KVStore) Save(ctx context.Context, p domain.Profile) error {
	return kv.SaveJSON(ctx, s.kv, kv.KeyProfile, p)
}

// Exists reports whether a profile blob is stored.
func (s *KVStore) Exists(ctx context.Context) (bool, error) {
	_, found, err := s.kv.Get(ctx, kv.KeyProfile)
	return found, err
}
