package tokens

import (
	"encoding/base64"
	"errors"
)

// ErrMalformedToken is returned by Decode when the input is not a valid
// URL-safe base64 string.
var ErrMalformedToken = errors.New("malformed token")

// Encode converts an opaque token payload into a URL-transport-safe string.
// The payload is treated as raw bytes; no text interpretation is applied.
func Encode(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode reverses [Encode]. For every payload p, Decode(Encode(p)) returns p
// exactly. Returns ErrMalformedToken when encoded contains characters outside
// the URL-safe alphabet or carries invalid padding.
func Decode(encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrMalformedToken
	}
	return raw, nil
}
