// Package utils provides small helpers shared across the application:
// typed context keys, JSON response writing, and JWT token generation
// and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key under which the authenticated principal's email is
// stored in the request context by the authentication middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "test@example.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated principal's email from the
// context.
//
// Returns the email and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
