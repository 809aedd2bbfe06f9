package kv

import "context"

// Storage keys. Each key holds an independent JSON blob; the keys have no
// ordering relationship and are seeded independently.
const (
	KeyProfile     = "profile"
	KeyGallery     = "gallery"
	KeyNotes       = "notes"
	KeyAuth        = "auth"
	KeyCredentials = "credentials"
)

// Store persists raw string values under string keys.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
