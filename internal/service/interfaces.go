package service

import (
	"context"

	"github.com/useraccounts/go-user-accounts/models"
)

// AccountService orchestrates the account lifecycle: registration, email
// confirmation, login, profile reads and updates, and password reset.
type AccountService interface {
	// Register creates an unconfirmed account, emails a confirmation link,
	// and returns the public projection of the new account.
	Register(ctx context.Context, req models.RegisterRequest) (models.AccountProjection, error)

	// ConfirmEmail redeems an emailed confirmation token and flips the
	// account's email-confirmed flag. A consumed token cannot be redeemed
	// again.
	ConfirmEmail(ctx context.Context, email, encodedToken string) error

	// Login verifies the credentials of a confirmed account and mints a
	// session token.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// GetProfile returns the public projection for the authenticated
	// account.
	GetProfile(ctx context.Context, accountID int64) (models.AccountProjection, error)

	// UpdateProfile mutates only the display name and returns the updated
	// projection.
	UpdateProfile(ctx context.Context, accountID int64, displayName string) (models.AccountProjection, error)

	// RequestPasswordReset emails a password-reset link to the account
	// registered with the given address.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword redeems an emailed reset token and replaces the account
	// password.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// CreateToken issues a signed session token for the account.
	CreateToken(ctx context.Context, accountID int64) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token model.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
