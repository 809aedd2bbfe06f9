package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const authenticatedContextKey contextKey = "authenticated"

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "studiolog_session"

// SecureCookies controls the Secure flag on session cookies; enabled in
// production.
var SecureCookies = false

// TokenStore persists the single admin session token. There is one admin
// and one active session; the token survives restarts and never expires
// until logout clears it.
type TokenStore interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Sessions validates cookies against the persisted token.
type Sessions struct {
	store TokenStore
}

// NewSessions creates a Sessions guard over the given token store.
func NewSessions(store TokenStore) *Sessions {
	return &Sessions{store: store}
}

// Create mints a fresh session token and persists it, replacing any
// previous session.
// POST: Returned token is the only one that authenticates
func (s *Sessions) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.store.SetToken(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// Validate reports whether token matches the persisted session.
// PRE: token may be empty
// POST: Returns false for empty tokens and lookup failures
func (s *Sessions) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	stored, err := s.store.GetToken(ctx)
	if err != nil {
		return false
	}
	return stored != "" && stored == token
}

// Destroy clears the persisted session. Credentials are untouched.
func (s *Sessions) Destroy(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// SetSessionCookie writes the session cookie.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Auth returns middleware that checks the session cookie against the
// persisted token and marks the request context authenticated. It does
// NOT block unauthenticated requests; use RequireAuth for that.
func Auth(sessions *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err == nil && sessions.Validate(r.Context(), cookie.Value) {
				ctx := context.WithValue(r.Context(), authenticatedContextKey, true)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAuthenticated reports whether the request context carries a valid
// admin session.
func IsAuthenticated(ctx context.Context) bool {
	v, _ := ctx.Value(authenticatedContextKey).(bool)
	return v
}

// RequireAuth returns middleware that blocks unauthenticated requests.
// Browser navigations are redirected to the login entry point; API calls
// get a plain 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			if isHTMLRequest(r) {
				http.Redirect(w, r, "/login.html", http.StatusSeeOther)
				return
			}
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}
