// Package crypto provides the credential-hashing primitives of the account
// service. Password hashing is delegated to bcrypt; the service never
// implements its own hash function.
package crypto

// Hasher hashes plaintext passwords for storage and verifies candidate
// passwords against stored hashes.
//
// Hash output is salted and therefore non-deterministic; Verify is the only
// valid way to compare a password against a hash.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
