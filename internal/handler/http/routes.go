package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/login", h.login)
	})

	// protected todo resource
	router.Route("/todos", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listTodos)
		r.Post("/", h.createTodo)
		r.Get("/{id}", h.getTodo)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	// catch-all: unknown paths and unsupported methods both answer with the
	// 404 envelope
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.writeEnvelope(w, r, http.StatusOK, msgIndexOK, nil)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeEnvelope(w, r, http.StatusNotFound, msgNotFound, nil)
}
