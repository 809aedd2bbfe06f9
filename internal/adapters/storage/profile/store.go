package profile

import (
	"context"

	domain "studiolog/internal/domain/profile"
)

// Store persists the singleton Profile.
type Store interface {
	// Get returns the stored profile, or the built-in default when no
	// profile has been stored (or the stored blob is corrupt).
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
	// Exists reports whether a profile blob is present at all; used by
	// seeding to fill true absence without overwriting user data.
	Exists(ctx context.Context) (bool, error)
}
