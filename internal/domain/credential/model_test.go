package credential_test

import (
	"errors"
	"testing"

	"studiolog/internal/domain/credential"
)

// TestAdminCredentials_Validate tests email validation.
func TestAdminCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		creds   credential.AdminCredentials
		wantErr error
	}{
		{name: "valid", creds: credential.AdminCredentials{Email: "alex@studio.dev"}, wantErr: nil},
		{name: "empty email", creds: credential.AdminCredentials{}, wantErr: credential.ErrEmptyEmail},
		{name: "no at sign", creds: credential.AdminCredentials{Email: "alex.studio.dev"}, wantErr: credential.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSetPassword_MinLength enforces the 6-character floor.
func TestSetPassword_MinLength(t *testing.T) {
	var c credential.AdminCredentials

	if err := c.SetPassword(""); !errors.Is(err, credential.ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
	if err := c.SetPassword("12345"); !errors.Is(err, credential.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if c.PasswordHash != "" {
		t.Error("expected no hash stored after rejected passwords")
	}

	if err := c.SetPassword("123456"); err != nil {
		t.Fatalf("unexpected error for 6-char password: %v", err)
	}
	if c.PasswordHash == "" || c.PasswordHash == "123456" {
		t.Error("expected password stored as a hash")
	}
}

// TestCheckPassword verifies hash comparison.
func TestCheckPassword(t *testing.T) {
	var c credential.AdminCredentials
	if err := c.CheckPassword("anything"); !errors.Is(err, credential.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword with no hash set, got %v", err)
	}

	if err := c.SetPassword("hunter22"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if err := c.CheckPassword("hunter22"); err != nil {
		t.Errorf("expected correct password to verify, got %v", err)
	}
	if err := c.CheckPassword("hunter23"); !errors.Is(err, credential.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

// TestMatchesEmail is case-sensitive on purpose.
func TestMatchesEmail(t *testing.T) {
	c := credential.AdminCredentials{Email: "alex@studio.dev"}
	if !c.MatchesEmail("alex@studio.dev") {
		t.Error("expected exact email to match")
	}
	if c.MatchesEmail("Alex@studio.dev") {
		t.Error("expected email comparison to be case-sensitive")
	}
}
