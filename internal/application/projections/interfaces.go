package projections

import (
	"context"

	domainGallery "studiolog/internal/domain/gallery"
	domainNote "studiolog/internal/domain/note"
	domainProfile "studiolog/internal/domain/profile"
)

// ProfileStore interface for profile queries.
type ProfileStore interface {
	Get(ctx context.Context) (domainProfile.Profile, error)
}

// GalleryStore interface for gallery queries.
type GalleryStore interface {
	List(ctx context.Context) ([]domainGallery.Item, error)
}

// NoteStore interface for note queries.
type NoteStore interface {
	List(ctx context.Context) ([]domainNote.Note, error)
}
