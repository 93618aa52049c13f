package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword is returned by Hash when the password is empty.
	ErrEmptyPassword = errors.New("empty password")

	// ErrMismatchedPassword is returned by Verify when the password does not
	// match the stored hash.
	ErrMismatchedPassword = errors.New("password does not match hash")
)

// bcryptHasher is the bcrypt-backed implementation of [Hasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [Hasher] using bcrypt with the given cost.
// A cost outside the valid bcrypt range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of password. Each call produces a
// different hash for the same input because bcrypt embeds a fresh salt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

// Verify compares password against the stored bcrypt hash.
// Returns ErrMismatchedPassword when they do not match; any other error
// indicates a malformed hash.
func (h *bcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedPassword
		}
		return err
	}
	return nil
}
