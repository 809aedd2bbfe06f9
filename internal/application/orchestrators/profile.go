package orchestrators

import (
	"context"
	"log/slog"

	"studiolog/internal/domain/profile"
)

// ProfileStoreForOrchestrator defines the store interface needed by
// profile orchestrators.
type ProfileStoreForOrchestrator interface {
	Get(ctx context.Context) (profile.Profile, error)
	Save(ctx context.Context, p profile.Profile) error
}

// UpdateProfileInput carries input for the update profile orchestrator.
// Avatar is the freshly normalized image when the form carried a new file;
// AvatarProvided distinguishes "no new file, keep the old one" from an
// explicit value.
type UpdateProfileInput struct {
	Name           string
	Title          string
	Bio            string
	Location       string
	Avatar         string
	AvatarProvided bool
	Socials        profile.Socials
}

// UpdateProfileDeps holds dependencies for UpdateProfile.
type UpdateProfileDeps struct {
	ProfileStore ProfileStoreForOrchestrator
}

// ExecuteUpdateProfile overwrites the whole profile in one save. The
// avatar is replaced only when a new one was provided; otherwise the
// stored value carries over.
// PRE: input carries the full submitted form
// POST: Profile is replaced atomically, or unchanged on validation error
func ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput, deps UpdateProfileDeps) (profile.Profile, error) {
	current, err := deps.ProfileStore.Get(ctx)
	if err != nil {
		return profile.Profile{}, err
	}

	updated := profile.Profile{
		Name:     input.Name,
		Title:    input.Title,
		Bio:      input.Bio,
		Location: input.Location,
		Avatar:   current.Avatar,
		Socials:  input.Socials,
	}
	if input.AvatarProvided {
		updated.Avatar = input.Avatar
	}

	if err := updated.Validate(); err != nil {
		return profile.Profile{}, err
	}
	if err := deps.ProfileStore.Save(ctx, updated); err != nil {
		return profile.Profile{}, err
	}

	slog.Info("content_event", "event", "profile_updated", "name", updated.Name)
	return updated, nil
}
