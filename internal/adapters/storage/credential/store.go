package credential

import (
	"context"

	domain "studiolog/internal/domain/credential"
)

// Store persists the single admin credential pair. Unlike the content
// stores there is no default: absence means no admin has been bootstrapped
// yet, which the login flow treats as an invitation to create one.
type Store interface {
	// Get returns the stored credentials and whether any exist.
	Get(ctx context.Context) (domain.AdminCredentials, bool, error)
	Save(ctx context.Context, c domain.AdminCredentials) error
}
