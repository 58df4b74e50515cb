package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/service"
	"github.com/mwalther/todo-api/models"
)

// login validates the credentials payload and issues a signed token.
//
// Responses:
//   - 500 "internal server error" when the signing secret is not configured.
//   - 400 "no credentials provided" on an empty body or a missing field.
//   - 401 "login failed due to invalid username and/or password" on a
//     rejected pair.
//   - 200 "login success" with {token} otherwise.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, msgNoCredentials, nil)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		status := statusFromError(err)

		switch {
		case errors.Is(err, service.ErrNoTokenSignKey):
			log.Err(err).Msg("login impossible: token sign key is not configured")
			h.writeEnvelope(w, r, status, msgInternalError, nil)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("no credentials provided")
			h.writeEnvelope(w, r, status, msgNoCredentials, nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			h.writeEnvelope(w, r, status, msgLoginFailed, nil)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.writeEnvelope(w, r, http.StatusInternalServerError, msgInternalError, nil)
		}
		return
	}

	log.Debug().Str("email", token.Email).Msg("user successfully logged in")

	h.writeEnvelope(w, r, http.StatusOK, msgLoginSuccess, models.TokenPayload{Token: token.SignedString})
}
