package session

import (
	"context"

	"studiolog/internal/adapters/storage/kv"
)

// KVStore implements Store over the key-value adapter.
type KVStore struct {
	kv kv.Store
}

// NewKVStore creates a new KVStore.
func NewKVStore(s kv.Store) *KVStore {
	return &KVStore{kv: s}
}

// GetToken retrieves the active session token.
// POST: Returns "" when no session is active
func (s *KVStore) GetToken(ctx context.Context) (string, error) {
	token, found, err := s.kv.Get(ctx, kv.KeyAuth)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return token, nil
}

// SetToken stores the active session token.
// PRE: token is non-empty
// POST: Token is persisted
func (s *KVStore) SetToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, kv.KeyAuth, token)
}

// Clear removes the active session token. Credentials are untouched.
func (s *KVStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, kv.KeyAuth)
}
