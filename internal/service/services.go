package service

import (
	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(NewDemoCredentialVerifier(), cfg.App, logger),
		TodoService: NewTodoService(storages.TodoRepository, cfg.App, logger),
	}
}
