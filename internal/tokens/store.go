// Package tokens implements single-use action tokens for email confirmation
// and password reset, together with the URL-safe codec used to transport
// them inside emailed links.
//
// A token is bound to one account and one purpose. Issuing a new token for
// the same (account, purpose) pair replaces the previous one, so only the
// most recently issued token is redeemable. Redemption is atomic: under
// concurrent attempts with the same token exactly one caller succeeds and
// all others fail.
package tokens

import (
	"context"
	"errors"
)

// Purpose binds an action token to the single operation it may authorize.
type Purpose string

const (
	// PurposeEmailConfirmation marks tokens redeemed by ConfirmEmail.
	PurposeEmailConfirmation Purpose = "email-confirmation"

	// PurposePasswordReset marks tokens redeemed by ResetPassword.
	PurposePasswordReset Purpose = "password-reset"
)

var (
	// ErrTokenNotFound is returned by Redeem when no token is outstanding
	// for the (account, purpose) pair, including after a successful
	// redemption consumed it.
	ErrTokenNotFound = errors.New("action token not found")

	// ErrTokenMismatch is returned by Redeem when the presented token does
	// not match the most recently issued one.
	ErrTokenMismatch = errors.New("action token mismatch")
)

// Store issues and redeems single-use action tokens.
//
// Implementations must guarantee that Redeem is atomic: when several callers
// race to redeem the same outstanding token, exactly one receives nil and
// the rest receive ErrTokenNotFound or ErrTokenMismatch.
type Store interface {
	// Issue generates a fresh opaque token for the account and purpose,
	// replacing any previously issued token for that pair, and returns it.
	Issue(ctx context.Context, accountID int64, purpose Purpose) (string, error)

	// Redeem consumes the outstanding token for the account and purpose if
	// and only if it equals token.
	Redeem(ctx context.Context, accountID int64, purpose Purpose, token string) error
}
