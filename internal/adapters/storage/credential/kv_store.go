package credential

import (
	"context"

	"studiolog/internal/adapters/storage/kv"
	domain "studiolog/internal/domain/credential"
)

// KVStore implements Store over the key-value adapter.
type KVStore struct {
	kv kv.Store
}

// NewKVStore creates a new KVStore.
func NewKVStore(s kv.Store) *KVStore {
	return &KVStore{kv: s}
}

// Get retrieves the admin credentials.
// POST: Returns (credentials, true) when present, (zero, false) when
// absent or corrupt
func (s *KVStore) Get(ctx context.Context) (domain.AdminCredentials, bool, error) {
	var c domain.AdminCredentials
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyCredentials, &c)
	if err != nil {
		return domain.AdminCredentials{}, false, err
	}
	return c, found, nil
}

// Save stores the admin credentials.
// PRE: c has been validated and carries a password hash
// POST: Credentials are persisted
func (s *KVStore) Save(ctx context.Context, c domain.AdminCredentials) error {
	return kv.SaveJSON(ctx, s.kv, kv.KeyCredentials, c)
}
