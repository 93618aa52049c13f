package store

import (
	"context"
	"fmt"

	"github.com/useraccounts/go-user-accounts/internal/config"
	"github.com/useraccounts/go-user-accounts/internal/logger"
)

// Storages aggregates the persistence-layer dependencies handed to the
// service layer.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages opens the database selected by cfg.DB.Engine, applies the
// embedded migrations, and wires the account repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Engine {
	case "", "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unknown database engine %q", cfg.DB.Engine)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
	}, nil
}
