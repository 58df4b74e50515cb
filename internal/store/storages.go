package store

import (
	"github.com/mwalther/todo-api/internal/logger"
)

// Storages bundles all repositories behind a single constructor so the
// composition root wires the store layer in one call.
type Storages struct {
	TodoRepository TodoRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		TodoRepository: NewTodoRepository(db, logger),
	}
}
