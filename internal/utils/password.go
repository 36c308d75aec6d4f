package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatchedPasswordAndHash is returned when a cleartext password does
// not match the stored bcrypt hash.
var ErrMismatchedPasswordAndHash = errors.New("password does not match hash")

// HashPassword generates a bcrypt hash for the given cleartext password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(h), nil
}

// ComparePasswordAndHash validates the given cleartext password against
// a stored bcrypt hash.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedPasswordAndHash
		}
		return err
	}

	return nil
}
