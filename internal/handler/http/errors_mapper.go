package http

import (
	"errors"
	"net/http"

	"github.com/mwalther/todo-api/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrNoTokenProvided:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrNoTokenSignKey:          http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
