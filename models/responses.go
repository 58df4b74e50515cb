package models

// Response is the uniform envelope returned by every endpoint.
//
// Status mirrors the HTTP status code of the response so clients that only
// inspect the body still see the outcome. Payload carries the requested
// content on success and is omitted entirely on errors.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// TokenPayload is the payload of a successful login response.
type TokenPayload struct {
	Token string `json:"token"`
}
