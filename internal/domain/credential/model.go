package credential

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Length constants for the credential pair.
const (
	MinPasswordLength = 6
	MaxEmailLength    = 254
)

// Domain errors
var (
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// AdminCredentials is the single admin login pair. It is created by the
// first-ever login attempt and never changes afterwards; there is no
// reset flow.
type AdminCredentials struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks if the credentials carry a plausible email.
// PRE: AdminCredentials struct is populated
// POST: Returns nil if valid, error otherwise
func (c *AdminCredentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if len(c.Email) > MaxEmailLength {
		return ErrInvalidEmail
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty and >= 6 characters
// POST: PasswordHash is set to bcrypt hash
func (c *AdminCredentials) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: AdminCredentials fields are not mutated
func (c *AdminCredentials) CheckPassword(plaintext string) error {
	if c.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// MatchesEmail compares emails exactly. The comparison is deliberately
// case-sensitive: the login must match the bootstrapped pair verbatim.
func (c *AdminCredentials) MatchesEmail(email string) bool {
	return c.Email == email
}
