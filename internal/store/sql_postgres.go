package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:      conn,
		dialect: DialectPostgres,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  log,
	}

	return db, nil
}

// postgresErrorCode extracts the five-character SQLSTATE code from a
// driver error, or returns "" when err did not come from PostgreSQL.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isConnectionLost reports whether err is a PostgreSQL connection-class
// failure. There is no reconnection logic; the repository only uses this to
// log that subsequent requests will keep failing until restart.
func isConnectionLost(err error) bool {
	code := postgresErrorCode(err)
	return code != "" && pgerrcode.IsConnectionException(code)
}
