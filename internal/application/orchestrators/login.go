package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studiolog/internal/domain/credential"
)

// CredentialStoreForLogin defines the store interface needed by Login.
type CredentialStoreForLogin interface {
	Get(ctx context.Context) (credential.AdminCredentials, bool, error)
	Save(ctx context.Context, c credential.AdminCredentials) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	Email        string
	Bootstrapped bool // true when this login created the credentials
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	CredentialStore CredentialStoreForLogin
	Now             func() time.Time
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// ExecuteLogin authenticates the admin. The first-ever attempt bootstraps:
// an email plus a password of at least 6 characters becomes the stored
// credential pair and the attempt succeeds. Every later attempt must match
// the stored pair exactly: email case-sensitive, password verified against
// the hash. There is no lockout and no reset path; once created, the pair
// is immutable through this flow.
// PRE: input carries the submitted form values
// POST: On success the credentials exist; on failure nothing is written
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	creds, found, err := deps.CredentialStore.Get(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	if !found {
		c := credential.AdminCredentials{
			Email:     input.Email,
			CreatedAt: deps.Now(),
		}
		if err := c.Validate(); err != nil {
			return LoginResult{}, err
		}
		if err := c.SetPassword(input.Password); err != nil {
			return LoginResult{}, err
		}
		if err := deps.CredentialStore.Save(ctx, c); err != nil {
			return LoginResult{}, err
		}
		slog.Info("auth_event", "event", "admin_bootstrapped", "email", c.Email)
		return LoginResult{Email: c.Email, Bootstrapped: true}, nil
	}

	if !creds.MatchesEmail(input.Email) {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_email")
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := creds.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", creds.Email)
	return LoginResult{Email: creds.Email}, nil
}
