// Copyright (c) 2025 Oleh Kravets.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrNoSession is returned when a request carries no token, or an expired
// or unknown one.
var ErrNoSession = errors.New("no valid session")

// HashPassword creates a bcrypt hash of the password. Plaintext passwords
// are never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewSessionToken creates an opaque session token. UUIDv4 gives 122 bits of
// randomness, enough that tokens are unguessable.
func NewSessionToken() string {
	return uuid.NewString()
}

// NormalizeEmail lowercases and trims an email so lookups and the UNIQUE
// constraint behave case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAdmin reports whether the email is on the allowlist. The allowlist is
// normalized at config parse time; the candidate email is normalized here.
func IsAdmin(email string, admins []string) bool {
	normalized := NormalizeEmail(email)
	for _, admin := range admins {
		if admin == normalized {
			return true
		}
	}
	return false
}
