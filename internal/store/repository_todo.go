package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/models"
)

// todoRepository is the SQL-backed implementation of [TodoRepository].
// It executes all todo CRUD operations against the "todos" table using the
// injected [*DB] handle; queries are built with squirrel so the same code
// serves both the SQLite and PostgreSQL dialects.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields.
type todoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *todoRepository) GetAll(ctx context.Context, limit int, orderBy []string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(r.db.builder, uint64(limit), orderBy)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.GetAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(log, "todoRepository.GetAll", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, limit)

	for rows.Next() {
		var todo models.Todo

		if scanErr := rows.Scan(&todo.ID, &todo.Text, &todo.IsDone); scanErr != nil {
			log.Err(scanErr).Str("func", "todoRepository.GetAll").Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "todoRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

func (r *todoRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTodoQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.GetByID").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&todo.ID, &todo.Text, &todo.IsDone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logQueryError(log, "todoRepository.GetByID", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &todo, nil
}

// Create inserts the row and re-reads it by the assigned id so the caller
// receives the canonical stored representation. The read-back is not atomic
// with the insert: an interleaved delete of the fresh id surfaces as a nil
// result.
func (r *todoRepository) Create(ctx context.Context, text string, done bool) (*models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTodoQuery(r.db.builder, text, done)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Create").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	id, err := r.insertReturningID(ctx, query, args)
	if err != nil {
		r.logQueryError(log, "todoRepository.Create", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("id", id).Str("func", "todoRepository.Create").Msg("todo inserted")

	return r.GetByID(ctx, id)
}

func (r *todoRepository) Update(ctx context.Context, id int64, text *string, done *bool) (*models.Todo, error) {
	log := logger.FromContext(ctx)

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	query, args, err := buildUpdateTodoQuery(r.db.builder, id, text, done)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Update").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logQueryError(log, "todoRepository.Update", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetByID(ctx, id)
}

func (r *todoRepository) Delete(ctx context.Context, id int64) (*models.Todo, error) {
	log := logger.FromContext(ctx)

	// snapshot before deletion; it is the value returned to the caller
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	query, args, err := buildDeleteTodoQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Delete").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logQueryError(log, "todoRepository.Delete", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return existing, nil
}

// insertReturningID runs the INSERT and retrieves the assigned id.
// PostgreSQL does not support LastInsertId through database/sql, so the
// postgres path appends a RETURNING clause instead.
func (r *todoRepository) insertReturningID(ctx context.Context, query string, args []any) (int64, error) {
	if r.db.dialect == DialectPostgres {
		var id int64
		err := r.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *todoRepository) logQueryError(log *logger.Logger, fn string, err error) {
	event := log.Err(err).Str("func", fn)
	if code := postgresErrorCode(err); code != "" {
		event = event.Str("pg_code", code)
	}
	event.Msg("database operation failed")

	if isConnectionLost(err) {
		log.Warn().Str("func", fn).Msg("database connection lost; requests will keep failing until restart")
	}
}
