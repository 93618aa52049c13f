package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/migrations"
)

// DB wraps the raw *sql.DB together with the engine-specific pieces the
// repositories need: a squirrel statement builder configured with the right
// placeholder format, a unique-violation classifier, and the goose dialect
// used for migrations.
type DB struct {
	*sql.DB
	builder           sq.StatementBuilderType
	isUniqueViolation func(error) bool
	dialect           string
	logger            *logger.Logger
}

// Migrate applies the embedded goose migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
