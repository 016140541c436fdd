// Package identity manages the three independent credential sets: users,
// business admins, and the single super admin. Usernames are unique
// within a set only; a user and an admin may share a username.
package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrBadCredentials    = errors.New("invalid username or password")
	ErrNotFound          = errors.New("account not found")
)

// HashPassword produces a bcrypt digest of the plaintext.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(digest), err
}

// CheckPassword reports whether the plaintext matches the digest.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
