package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/useraccounts/go-user-accounts/models"
)

// Sentinel errors returned by [ValidateAndParseJWTToken]. They separate the
// three validation failure kinds so that callers can report them distinctly.
var (
	// ErrTokenExpired indicates a structurally valid, correctly signed token
	// whose expiry timestamp has passed.
	ErrTokenExpired = errors.New("session token is expired")

	// ErrTokenBadSignature indicates the signature does not verify against
	// the configured signing key.
	ErrTokenBadSignature = errors.New("session token signature is invalid")

	// ErrTokenMalformed indicates the input is not a parsable JWT at all.
	ErrTokenMalformed = errors.New("session token is malformed")
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The issuer claim is informational only; it is not validated on parse.
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateJWTToken(issuer string, accountID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, AccountID: accountID}, nil
}

// ValidateAndParseJWTToken validates the given session token string and
// extracts its claims.
//
// Validation includes:
//   - signature verification using the provided sign key (HS256 only)
//   - expiration (exp) claim check
//   - subject (sub) claim presence and conversion to int64 AccountID
//
// No audience or issuer validation is performed; session tokens carry a
// single identity claim and a short expiry by design.
//
// Returns the parsed token model on success, or one of the sentinel errors
// ([ErrTokenExpired], [ErrTokenBadSignature], [ErrTokenMalformed]) on
// validation failure.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenBadSignature
		default:
			return models.Token{}, ErrTokenMalformed
		}
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, ErrTokenMalformed
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, ErrTokenMalformed
	}

	return models.Token{Token: token, AccountID: accountID}, nil
}
