package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/service"
	"github.com/mwalther/todo-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on the
// todo routes.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken], and — on success — stores the
// authenticated principal's email in the request context under
// [utils.EmailCtxKey] before delegating to the next handler.
//
// Rejections, in the order they are checked:
//   - 500 "internal server error" — the signing secret is not configured.
//     This is a deployment misconfiguration, not a request error.
//   - 401 "authentication required" — no token was presented (missing or
//     malformed Authorization header).
//   - 403 "authentication failed (invalid token)" — the token is present
//     but fails signature, issuer, or expiry verification.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		// a malformed header carries no usable token, which the service
		// reports as ErrNoTokenProvided
		tokenString, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoTokenSignKey):
				log.Err(err).Msg("authentication impossible: token sign key is not configured")
				h.writeEnvelope(w, r, http.StatusInternalServerError, msgInternalError, nil)
			case errors.Is(err, service.ErrNoTokenProvided):
				log.Err(err).Msg("no bearer token in request")
				h.writeEnvelope(w, r, http.StatusUnauthorized, msgAuthRequired, nil)
			default:
				log.Err(err).Msg("token verification failed")
				h.writeEnvelope(w, r, http.StatusForbidden, msgAuthFailed, nil)
			}
			return
		}

		// Store the principal's email in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
