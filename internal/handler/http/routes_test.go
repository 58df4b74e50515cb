package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/service"
	"github.com/mwalther/todo-api/models"
)

// ---- Stub: AuthService ----

type stubAuthService struct {
	loginFn      func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, credentials)
	}
	return models.Token{Email: credentials.Email, SignedString: "stub-token"}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn != nil {
		return s.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "" {
		return models.Token{}, service.ErrNoTokenProvided
	}
	return models.Token{Email: "test@example.com"}, nil
}

// ---- Stub: TodoService ----

type stubTodoService struct {
	listAllFn    func(ctx context.Context, limit *int, orderBy []string) (models.TodoList, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.Todo, error)
	addFn        func(ctx context.Context, text string, isDone bool) (*models.Todo, error)
	updateByIDFn func(ctx context.Context, id int64, text *string, isDone *bool) (*models.Todo, error)
	deleteByIDFn func(ctx context.Context, id int64) (*models.Todo, error)
}

func (s *stubTodoService) ListAll(ctx context.Context, limit *int, orderBy []string) (models.TodoList, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx, limit, orderBy)
	}
	return models.TodoList{Limit: 20, OrderBy: []string{"id desc"}, Todos: []models.Todo{}}, nil
}

func (s *stubTodoService) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Todo{ID: id, Text: "stub"}, nil
}

func (s *stubTodoService) Add(ctx context.Context, text string, isDone bool) (*models.Todo, error) {
	if s.addFn != nil {
		return s.addFn(ctx, text, isDone)
	}
	return &models.Todo{ID: 1, Text: text, IsDone: isDone}, nil
}

func (s *stubTodoService) UpdateByID(ctx context.Context, id int64, text *string, isDone *bool) (*models.Todo, error) {
	if s.updateByIDFn != nil {
		return s.updateByIDFn(ctx, id, text, isDone)
	}
	return &models.Todo{ID: id, Text: "stub"}, nil
}

func (s *stubTodoService) DeleteByID(ctx context.Context, id int64) (*models.Todo, error) {
	if s.deleteByIDFn != nil {
		return s.deleteByIDFn(ctx, id)
	}
	return &models.Todo{ID: id, Text: "stub"}, nil
}

// ---- Helpers ----

func newTestHandler(authSvc service.AuthService, todoSvc service.TodoService) *Handler {
	if authSvc == nil {
		authSvc = &stubAuthService{}
	}
	if todoSvc == nil {
		todoSvc = &stubTodoService{}
	}
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
			TodoService: todoSvc,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestHandler(nil, nil).Init()
}

// injectNopLogger places a nop logger into the request context, standing in
// for what withTraceID does on the real middleware chain.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	return e
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodPost, "/login", http.StatusBadRequest}, // reachable, rejected for missing credentials
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestInit_Index(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	e := decodeEnvelope(t, rr)
	assert.Equal(t, http.StatusOK, e.Status)
	assert.Equal(t, "OK", e.Message)
	assert.Nil(t, e.Payload)
}

// ---- Protected routes: rejected without a token ----

func TestInit_ProtectedRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/todos"},
		{http.MethodPost, "/todos"},
		{http.MethodGet, "/todos/1"},
		{http.MethodPut, "/todos/1"},
		{http.MethodDelete, "/todos/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "authentication required", decodeEnvelope(t, rr).Message)
		})
	}
}

func TestInit_ProtectedRoutes_AcceptToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeEnvelope(t, rr).Message)
}

// ---- Catch-all ----

func TestInit_UnknownRoutesAnswer404Envelope(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"unsupported method on known path", http.MethodPatch, "/todos/1"},
		{"nested unknown path", http.MethodGet, "/todos/1/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			// authenticated so the todo subtree falls through to routing
			req.Header.Set("Authorization", "Bearer stub-token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "not found", decodeEnvelope(t, rr).Message)
		})
	}
}

func TestInit_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
