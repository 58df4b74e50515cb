package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username and/or password")

	// ErrNoTokenSignKey reports a deployment misconfiguration: the signing
	// secret is absent from the environment. Surfaced as 500, not as a
	// request error.
	ErrNoTokenSignKey = errors.New("no token sign key configured")

	// ErrNoTokenProvided reports that a protected route was called without
	// any bearer token.
	ErrNoTokenProvided = errors.New("no token provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
