package service

import (
	"context"

	"github.com/mwalther/todo-api/models"
)

// AuthService owns the token lifecycle for the API: credential verification
// on login and token validation on every protected request.
type AuthService interface {
	// Login verifies the supplied credentials and issues a signed token for
	// the authenticated principal.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ParseToken validates a raw bearer token string and returns the decoded
	// token with the principal's email populated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialVerifier checks an email/password pair and returns the
// authenticated principal's email.
//
// The demo implementation compares against a fixed development pair; a
// production deployment substitutes an identity-provider-backed
// implementation without touching the login flow.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (string, error)
}

// TodoService wraps the todo repository with input clamping and result
// shaping: limits are clamped to a fixed range, order-by tokens are filtered
// against an allow-list, and every returned todo carries its derived URL.
type TodoService interface {
	// ListAll returns the todos matching the effective limit and order-by,
	// together with the values actually applied after clamping/filtering.
	// A nil limit or orderBy means the caller did not specify one.
	ListAll(ctx context.Context, limit *int, orderBy []string) (models.TodoList, error)

	// GetByID returns the matching todo or nil when none exists.
	GetByID(ctx context.Context, id int64) (*models.Todo, error)

	// Add trims the text, inserts a new todo, and returns the canonical
	// stored representation.
	Add(ctx context.Context, text string, isDone bool) (*models.Todo, error)

	// UpdateByID updates only the supplied fields and returns the updated
	// todo, or nil when the id does not exist. The route layer guarantees at
	// least one field is supplied.
	UpdateByID(ctx context.Context, id int64, text *string, isDone *bool) (*models.Todo, error)

	// DeleteByID removes the todo and returns its pre-deletion snapshot, or
	// nil when the id does not exist.
	DeleteByID(ctx context.Context, id int64) (*models.Todo, error)
}
