package session

import "context"

// Store persists the single admin session token. The token has no expiry:
// it stays valid across page loads and server restarts until logout
// explicitly clears it.
type Store interface {
	// GetToken returns the active session token, or "" when no session
	// is active.
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
