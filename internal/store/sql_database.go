package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/migrations"
)

// Dialect identifies the SQL backend behind a [DB] handle. It selects the
// placeholder format, the goose migration set, and the strategy for
// retrieving auto-increment keys on INSERT.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DB is the process-wide database handle. It is constructed once at the
// composition root and injected into repositories; no package-level
// connection state exists.
type DB struct {
	*sql.DB

	dialect Dialect
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens a database connection for the given DSN. A DSN with a
// postgres:// or postgresql:// scheme selects the PostgreSQL driver;
// anything else is treated as a SQLite file path.
//
// The connection is pinged before being returned, so a failure here means
// the database is unreachable and startup should abort.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
