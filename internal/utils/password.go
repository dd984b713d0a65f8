package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a one-way bcrypt hash of the given plaintext password.
//
// The plaintext is never stored; only the resulting hash is persisted.
// Verification is performed with [VerifyPassword], never by re-hashing and
// comparing strings (bcrypt hashes embed a random salt).
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. A mismatch is not an exceptional condition; the returned error
// is non-nil for both wrong passwords and malformed hashes.
func VerifyPassword(passwordHash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
}
