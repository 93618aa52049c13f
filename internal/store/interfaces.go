package store

import (
	"context"

	"github.com/useraccounts/go-user-accounts/models"
)

// AccountRepository is the persistence contract for account records.
// Implementations map driver-level failures to the sentinel errors declared
// in this package.
type AccountRepository interface {
	// CreateAccount persists a new account and returns it with
	// server-assigned fields populated. Fails with ErrUsernameOrEmailTaken
	// when either unique identity column is already in use.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindByUsername returns the account with the given username or
	// ErrNoAccountWasFound.
	FindByUsername(ctx context.Context, username string) (models.Account, error)

	// FindByEmail returns the account with the given email or
	// ErrNoAccountWasFound.
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// FindByID returns the account with the given id or ErrNoAccountWasFound.
	FindByID(ctx context.Context, accountID int64) (models.Account, error)

	// SetEmailConfirmed flips the email-confirmed flag to true. The flag
	// never transitions back.
	SetEmailConfirmed(ctx context.Context, accountID int64) error

	// UpdateDisplayName mutates only the display name and returns the
	// updated account.
	UpdateDisplayName(ctx context.Context, accountID int64, displayName string) (models.Account, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error
}
