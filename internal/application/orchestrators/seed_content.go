package orchestrators

import (
	"context"
	"log/slog"

	"studiolog/internal/domain/gallery"
	"studiolog/internal/domain/note"
	"studiolog/internal/domain/profile"
)

// ProfileStoreForSeed defines the store interface needed by SeedContent.
type ProfileStoreForSeed interface {
	Exists(ctx context.Context) (bool, error)
	Save(ctx context.Context, p profile.Profile) error
}

// GalleryStoreForSeed defines the store interface needed by SeedContent.
type GalleryStoreForSeed interface {
	Exists(ctx context.Context) (bool, error)
	Replace(ctx context.Context, items []gallery.Item) error
}

// NoteStoreForSeed defines the store interface needed by SeedContent.
type NoteStoreForSeed interface {
	Exists(ctx context.Context) (bool, error)
	Replace(ctx context.Context, notes []note.Note) error
}

// SeedContentDeps holds dependencies for SeedContent.
type SeedContentDeps struct {
	ProfileStore ProfileStoreForSeed
	GalleryStore GalleryStoreForSeed
	NoteStore    NoteStoreForSeed
}

// ExecuteSeedContent writes the built-in defaults for any content key that
// has never been stored. Idempotent: a key that already holds data, even
// an emptied collection, is left alone. Keys are independent, so a
// partially seeded site fills in only what is missing.
// POST: Every content key holds a value
func ExecuteSeedContent(ctx context.Context, deps SeedContentDeps) error {
	seeded := 0

	exists, err := deps.ProfileStore.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := deps.ProfileStore.Save(ctx, profile.Default()); err != nil {
			return err
		}
		seeded++
	}

	exists, err = deps.GalleryStore.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := deps.GalleryStore.Replace(ctx, gallery.Defaults()); err != nil {
			return err
		}
		seeded++
	}

	exists, err = deps.NoteStore.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := deps.NoteStore.Replace(ctx, note.Defaults()); err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seed_event", "event", "content_seeded", "keys_filled", seeded)
	}
	return nil
}
