package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mwalther/todo-api/internal/logger"
)

type createTodoRequest struct {
	Text *string `json:"text"`

	// IsDone is decoded loosely on purpose: only the JSON literal true marks
	// a new todo as done, every other value (strings, numbers, absence)
	// coerces to false.
	IsDone any `json:"isDone"`
}

type updateTodoRequest struct {
	Text   *string `json:"text"`
	IsDone *bool   `json:"isDone"`
}

// listTodos handles GET /todos. limit and orderBy come from the query
// string; both are optional and sanitized by the service.
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := parseLimitParam(r.URL.Query().Get("limit"))
	orderBy := parseOrderByParam(r.URL.Query()["orderBy"])

	list, err := h.services.TodoService.ListAll(ctx, limit, orderBy)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}

	log.Debug().Int("count", list.Count).Msg("todos listed")

	h.writeEnvelope(w, r, http.StatusOK, msgOK, list)
}

// getTodo handles GET /todos/{id}.
func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		// the store is never consulted for a syntactically invalid id
		h.writeEnvelope(w, r, http.StatusNotFound, msgInvalidID, nil)
		return
	}

	todo, err := h.services.TodoService.GetByID(ctx, id)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	if todo == nil {
		h.writeEnvelope(w, r, http.StatusNotFound, msgNotFound, nil)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, msgOK, todo)
}

// createTodo handles POST /todos.
func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, msgNoContent, nil)
		return
	}

	// whitespace-only text would be stored as the empty string after
	// trimming, so it is rejected the same way as a missing field
	if body.Text == nil || strings.TrimSpace(*body.Text) == "" {
		h.writeEnvelope(w, r, http.StatusBadRequest, msgNoContent, nil)
		return
	}

	isDone, _ := body.IsDone.(bool)

	todo, err := h.services.TodoService.Add(ctx, *body.Text, isDone)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}

	log.Debug().Int64("id", todo.ID).Msg("todo created")

	h.writeEnvelope(w, r, http.StatusCreated, msgOK, todo)
}

// updateTodo handles PUT /todos/{id}. At least one of text/isDone must be
// present; the absent field is left untouched.
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r)
	if !ok {
		h.writeEnvelope(w, r, http.StatusNotFound, msgInvalidID, nil)
		return
	}

	var body updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, msgNoContent, nil)
		return
	}

	if body.Text == nil && body.IsDone == nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, msgNoContent, nil)
		return
	}

	todo, err := h.services.TodoService.UpdateByID(ctx, id, body.Text, body.IsDone)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	if todo == nil {
		h.writeEnvelope(w, r, http.StatusNotFound, msgNotFound, nil)
		return
	}

	h.writeEnvelope(w, r, http.StatusCreated, msgOK, todo)
}

// deleteTodo handles DELETE /todos/{id} and answers with the snapshot of the
// removed item.
func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		h.writeEnvelope(w, r, http.StatusNotFound, msgInvalidID, nil)
		return
	}

	todo, err := h.services.TodoService.DeleteByID(ctx, id)
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	if todo == nil {
		h.writeEnvelope(w, r, http.StatusNotFound, msgNotFound, nil)
		return
	}

	h.writeEnvelope(w, r, http.StatusCreated, msgOK, todo)
}

// storeFailure reports a failed store interaction. The error's textual
// detail is appended to the message on purpose: this API exposes store
// failure detail to its callers as part of the contract.
func (h *Handler) storeFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("store operation failed")
	h.writeEnvelope(w, r, http.StatusInternalServerError, msgInternalError+": "+err.Error(), nil)
}

// parseIDParam extracts and validates the {id} route parameter.
// Non-numeric and non-positive values are invalid.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseLimitParam maps the raw limit query value to the service's pointer
// semantics: nil when absent or non-numeric, the parsed value otherwise.
func parseLimitParam(raw string) *int {
	if raw == "" {
		return nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &limit
}

// parseOrderByParam flattens repeated orderBy query parameters and
// comma-separated lists into one slice. Returns nil when the parameter was
// not supplied at all, which the service treats as "use the default order".
func parseOrderByParam(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	orderBy := make([]string, 0, len(values))
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			orderBy = append(orderBy, strings.TrimSpace(token))
		}
	}

	return orderBy
}
