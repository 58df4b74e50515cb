package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/store"
	"github.com/mwalther/todo-api/models"
)

// Limit bounds applied to every list request.
const (
	// DefaultLimit is used when the caller supplies no usable limit.
	DefaultLimit = 20

	// MaxLimit caps the number of rows a single list request may return.
	MaxLimit = 100

	// MinLimit is the floor for explicitly supplied limits.
	MinLimit = 1
)

// TodoOrderAllowList is the fixed set of column/direction pairs accepted for
// ordering. Requested tokens outside this set are dropped silently.
var TodoOrderAllowList = []string{"id", "id desc", "text", "text desc", "done", "done desc"}

// DefaultOrderBy is applied when the caller supplies no order-by at all.
// A supplied-but-all-invalid order-by does NOT fall back to it; that case
// degrades to unordered output.
var DefaultOrderBy = []string{"id desc"}

// todoService is the concrete implementation of TodoService.
type todoService struct {
	repository store.TodoRepository

	// baseURL is the external base address used to derive each todo's URL.
	baseURL string

	logger *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(repository store.TodoRepository, cfg config.App, logger *logger.Logger) TodoService {
	return &todoService{
		repository: repository,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// ListAll applies the limit clamp and the order-by allow-list, fetches the
// rows, and echoes the effective values alongside them.
//
// limit semantics: nil means "unspecified" and becomes DefaultLimit; values
// above MaxLimit truncate to MaxLimit; values below MinLimit (zero and
// negatives included) raise to MinLimit. orderBy semantics: nil means
// "unspecified" and becomes DefaultOrderBy; a non-nil list is lower-cased
// and filtered, and may end up empty.
func (s *todoService) ListAll(ctx context.Context, limit *int, orderBy []string) (models.TodoList, error) {
	log := logger.FromContext(ctx)

	effectiveLimit := clampLimit(limit)

	effectiveOrderBy := DefaultOrderBy
	if orderBy != nil {
		effectiveOrderBy = FilterOrderBy(orderBy, TodoOrderAllowList)
	}

	todos, err := s.repository.GetAll(ctx, effectiveLimit, effectiveOrderBy)
	if err != nil {
		log.Err(err).Msg("fetching todos failed")
		return models.TodoList{}, fmt.Errorf("fetching todos failed: %w", err)
	}

	for i := range todos {
		todos[i].URL = s.todoURL(todos[i].ID)
	}

	return models.TodoList{
		Count:   len(todos),
		Limit:   effectiveLimit,
		OrderBy: effectiveOrderBy,
		Todos:   todos,
	}, nil
}

func (s *todoService) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.repository.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("fetching todo failed")
		return nil, fmt.Errorf("fetching todo failed: %w", err)
	}

	return s.withURL(todo), nil
}

func (s *todoService) Add(ctx context.Context, text string, isDone bool) (*models.Todo, error) {
	todo, err := s.repository.Create(ctx, strings.TrimSpace(text), isDone)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("creating todo failed")
		return nil, fmt.Errorf("creating todo failed: %w", err)
	}

	return s.withURL(todo), nil
}

func (s *todoService) UpdateByID(ctx context.Context, id int64, text *string, isDone *bool) (*models.Todo, error) {
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		text = &trimmed
	}

	todo, err := s.repository.Update(ctx, id, text, isDone)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("updating todo failed")
		return nil, fmt.Errorf("updating todo failed: %w", err)
	}

	return s.withURL(todo), nil
}

func (s *todoService) DeleteByID(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.repository.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("deleting todo failed")
		return nil, fmt.Errorf("deleting todo failed: %w", err)
	}

	return s.withURL(todo), nil
}

func (s *todoService) todoURL(id int64) string {
	return fmt.Sprintf("%s/todos/%d", s.baseURL, id)
}

// withURL populates the derived URL field, passing nil through untouched.
func (s *todoService) withURL(todo *models.Todo) *models.Todo {
	if todo == nil {
		return nil
	}
	todo.URL = s.todoURL(todo.ID)
	return todo
}

// clampLimit maps a requested limit to the effective one: nil (unspecified)
// becomes DefaultLimit, values above MaxLimit truncate, values below
// MinLimit raise.
func clampLimit(limit *int) int {
	switch {
	case limit == nil:
		return DefaultLimit
	case *limit > MaxLimit:
		return MaxLimit
	case *limit < MinLimit:
		return MinLimit
	default:
		return *limit
	}
}

// FilterOrderBy lower-cases each requested token and keeps only those
// present in the allow-list, preserving request order. Tokens outside the
// allow-list are dropped silently; the result may be empty.
func FilterOrderBy(requested []string, allowed []string) []string {
	filtered := make([]string, 0, len(requested))

	for _, token := range requested {
		token = strings.ToLower(strings.TrimSpace(token))
		for _, allow := range allowed {
			if token == allow {
				filtered = append(filtered, token)
				break
			}
		}
	}

	return filtered
}
