package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameOrEmailTaken is returned when an attempt to register a new
	// account fails because the username or the email is already in use.
	ErrUsernameOrEmailTaken = errors.New("username or email already taken")

	// ErrNoAccountWasFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")
)
