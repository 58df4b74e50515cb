package http

import (
	"net/http"

	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/utils"
	"github.com/mwalther/todo-api/models"
)

// Response messages of the public API. Clients match on these strings, so
// they are part of the contract.
const (
	msgOK            = "ok"
	msgIndexOK       = "OK"
	msgNotFound      = "not found"
	msgInvalidID     = "not found: invalid id"
	msgNoContent     = "no content provided"
	msgNoCredentials = "no credentials provided"
	msgAuthRequired  = "authentication required"
	msgAuthFailed    = "authentication failed (invalid token)"
	msgLoginSuccess  = "login success"
	msgLoginFailed   = "login failed due to invalid username and/or password"
	msgInternalError = "internal server error"
)

// writeEnvelope sends the uniform {status, message, payload?} response body
// with the same status code on the wire.
func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, statusCode int, message string, payload any) {
	response := models.Response{
		Status:  statusCode,
		Message: message,
		Payload: payload,
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response envelope")
	}
}
