package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/models"
)

// accountColumns is the canonical column order scanned into models.Account.
var accountColumns = []string{
	"account_id",
	"username",
	"email",
	"password_hash",
	"email_confirmed",
	"display_name",
	"created_at",
}

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation, lookup, and the two permitted mutations
// (email-confirmed flag, display name / password hash) against the
// "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (AccountID,
// CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique-constraint violation → [ErrUsernameOrEmailTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(account.TableName()).
		Columns("username", "email", "password_hash", "email_confirmed", "display_name").
		Values(account.Username, account.Email, account.PasswordHash, account.EmailConfirmed, account.DisplayName).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.Account
	if err := scanAccount(row, &created); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Account{}, ErrUsernameOrEmailTaken
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindByUsername retrieves the account whose username matches exactly.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findBy(ctx, sq.Eq{"username": username})
}

// FindByEmail retrieves the account registered with the given email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findBy(ctx, sq.Eq{"email": email})
}

// FindByID retrieves the account with the given id. Used by the profile
// endpoints, which must tolerate a session token referencing an account that
// no longer exists.
func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findBy(ctx, sq.Eq{"account_id": accountID})
}

func (r *accountRepository) findBy(ctx context.Context, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("error building sql query: %w", err)
	}

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAccount(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.findBy").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// SetEmailConfirmed flips the email-confirmed flag to true for the account.
// The column only ever transitions false -> true.
func (r *accountRepository) SetEmailConfirmed(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Account{}.TableName()).
		Set("email_confirmed", true).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	return r.execExpectingMatch(ctx, log, query, args)
}

// UpdateDisplayName mutates only the display name and returns the updated
// account record.
func (r *accountRepository) UpdateDisplayName(ctx context.Context, accountID int64, displayName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Account{}.TableName()).
		Set("display_name", displayName).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("error building sql query: %w", err)
	}

	var updated models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAccount(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateDisplayName").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// UpdatePasswordHash replaces the stored password hash for the account.
func (r *accountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Account{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	return r.execExpectingMatch(ctx, log, query, args)
}

// execExpectingMatch runs an UPDATE expected to touch exactly one account and
// maps a zero rows-affected result to [ErrNoAccountWasFound].
func (r *accountRepository) execExpectingMatch(ctx context.Context, log *logger.Logger, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.execExpectingMatch").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

func scanAccount(row *sql.Row, dst *models.Account) error {
	return row.Scan(
		&dst.AccountID,
		&dst.Username,
		&dst.Email,
		&dst.PasswordHash,
		&dst.EmailConfirmed,
		&dst.DisplayName,
		&dst.CreatedAt,
	)
}

func joinColumns() string {
	return strings.Join(accountColumns, ", ")
}
