package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"message": "ok"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
	assert.Equal(t, rr.Body.Len(), n)
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rr, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
