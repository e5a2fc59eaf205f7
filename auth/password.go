// Package auth covers the two credential collaborators: bcrypt password
// hashing and JWT bearer token issuance/verification.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

// bcrypt only considers the first 72 bytes of its input. Truncate explicitly
// on both hash and verify so previously issued hashes keep validating.
const maxBcryptBytes = 72

func truncatePassword(password string) []byte {
	pw := []byte(password)
	if len(pw) > maxBcryptBytes {
		pw = pw[:maxBcryptBytes]
	}
	return pw
}

// HashPassword produces a one-way bcrypt hash for storage. The plaintext is
// never stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to hash password", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
