package store

import (
	"context"

	"github.com/mwalther/todo-api/models"
)

// TodoRepository is the data-access contract for the todos table.
//
// GetByID, Update, and Delete return (nil, nil) when no row matches the id;
// absence is a result, not an error. The returned Todo values never have the
// derived URL field populated — that is the service layer's concern.
type TodoRepository interface {
	// GetAll returns up to limit rows ordered by the given column/direction
	// pairs. orderBy entries are trusted: the caller must have filtered them
	// against the allow-list before they reach the store.
	GetAll(ctx context.Context, limit int, orderBy []string) ([]models.Todo, error)

	// GetByID returns the matching row or nil when none exists.
	GetByID(ctx context.Context, id int64) (*models.Todo, error)

	// Create inserts a new row and returns the canonical stored
	// representation, re-read by the newly assigned id.
	Create(ctx context.Context, text string, done bool) (*models.Todo, error)

	// Update modifies only the supplied fields of the matching row and
	// returns the updated row, or nil when the id does not exist.
	Update(ctx context.Context, id int64, text *string, done *bool) (*models.Todo, error)

	// Delete removes the matching row and returns it as it was immediately
	// before deletion, or nil when the id does not exist.
	Delete(ctx context.Context, id int64) (*models.Todo, error)
}
