package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db: &DB{
			DB:                db,
			builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			isUniqueViolation: isPostgresUniqueViolation,
			logger:            l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows(account models.Account) *sqlmock.Rows {
	return sqlmock.
		NewRows(accountColumns).
		AddRow(
			account.AccountID,
			account.Username,
			account.Email,
			account.PasswordHash,
			account.EmailConfirmed,
			account.DisplayName,
			account.CreatedAt,
		)
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	account := models.Account{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
		DisplayName:  "John",
	}

	stored := account
	stored.AccountID = 1
	stored.CreatedAt = time.Now()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.Username, account.Email, account.PasswordHash, account.EmailConfirmed, account.DisplayName).
		WillReturnRows(accountRows(stored))

	created, err := repo.CreateAccount(ctx, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AccountID != 1 {
		t.Errorf("expected AccountID=1, got %d", created.AccountID)
	}
	if created.Username != account.Username {
		t.Errorf("expected username %s, got %s", account.Username, created.Username)
	}
	if created.EmailConfirmed {
		t.Error("expected a freshly created account to be unconfirmed")
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(ctx, models.Account{Username: "john", Email: "john@example.com"})
	if !errors.Is(err, ErrUsernameOrEmailTaken) {
		t.Fatalf("expected ErrUsernameOrEmailTaken, got %v", err)
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateAccount(ctx, models.Account{Username: "john"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUsernameOrEmailTaken) {
		t.Fatalf("driver error must not be classified as unique violation: %v", err)
	}
}

func TestFindByUsername_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Account{
		AccountID:      7,
		Username:       "john",
		Email:          "john@example.com",
		PasswordHash:   "hash",
		EmailConfirmed: true,
		DisplayName:    "John",
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE username").
		WithArgs("john").
		WillReturnRows(accountRows(stored))

	found, err := repo.FindByUsername(ctx, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.AccountID != stored.AccountID {
		t.Errorf("expected AccountID=%d, got %d", stored.AccountID, found.AccountID)
	}
	if !found.EmailConfirmed {
		t.Error("expected EmailConfirmed=true")
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE account_id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(ctx, 99)
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestSetEmailConfirmed_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE accounts SET email_confirmed").
		WithArgs(true, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetEmailConfirmed(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetEmailConfirmed_NoAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE accounts SET email_confirmed").
		WithArgs(true, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetEmailConfirmed(ctx, 99)
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestUpdateDisplayName_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Account{
		AccountID:      7,
		Username:       "john",
		Email:          "john@example.com",
		PasswordHash:   "hash",
		EmailConfirmed: true,
		DisplayName:    "Johnny",
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery("UPDATE accounts SET display_name").
		WithArgs("Johnny", int64(7)).
		WillReturnRows(accountRows(stored))

	updated, err := repo.UpdateDisplayName(ctx, 7, "Johnny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DisplayName != "Johnny" {
		t.Errorf("expected display name Johnny, got %s", updated.DisplayName)
	}
}

func TestUpdateDisplayName_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts SET display_name").
		WithArgs("Johnny", int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateDisplayName(ctx, 99, "Johnny")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestUpdatePasswordHash_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE accounts SET password_hash").
		WithArgs("new-hash", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordHash(ctx, 7, "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePasswordHash_NoAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE accounts SET password_hash").
		WithArgs("new-hash", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(ctx, 99, "new-hash")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Fatalf("expected ErrNoAccountWasFound, got %v", err)
	}
}
