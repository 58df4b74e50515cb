package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := newTestHandler(nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/todos", nil))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}
