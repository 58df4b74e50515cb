package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/utils"
	"github.com/mwalther/todo-api/models"
)

func newTestAuthService(signKey string) AuthService {
	return NewAuthService(NewDemoCredentialVerifier(), config.App{
		TokenSignKey:  signKey,
		TokenIssuer:   "todo-api-test",
		TokenDuration: 30 * time.Minute,
	}, logger.Nop())
}

func validCredentials() models.Credentials {
	return models.Credentials{Email: demoEmail, Password: demoPassword}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService("secret")

	token, err := svc.Login(context.Background(), validCredentials())
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, demoEmail, token.Email)
}

func TestAuthService_Login_NoSignKey(t *testing.T) {
	svc := newTestAuthService("")

	// reported even before credentials are inspected
	_, err := svc.Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService("secret")

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"both empty", models.Credentials{}},
		{"missing password", models.Credentials{Email: demoEmail}},
		{"missing email", models.Credentials{Password: demoPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	svc := newTestAuthService("secret")

	_, err := svc.Login(context.Background(), models.Credentials{
		Email:    "someone@example.com",
		Password: "guess",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService("secret")

	issued, err := svc.Login(context.Background(), validCredentials())
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, demoEmail, parsed.Email)
}

func TestAuthService_ParseToken_NoSignKey(t *testing.T) {
	svc := newTestAuthService("")

	_, err := svc.ParseToken(context.Background(), "whatever")
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestAuthService_ParseToken_NoToken(t *testing.T) {
	svc := newTestAuthService("secret")

	_, err := svc.ParseToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoTokenProvided)
}

func TestAuthService_ParseToken_InvalidToken(t *testing.T) {
	svc := newTestAuthService("secret")

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ExpiredToken(t *testing.T) {
	svc := newTestAuthService("secret")

	expired, err := utils.GenerateJWTToken("todo-api-test", demoEmail, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	svc := newTestAuthService("secret")

	foreign, err := utils.GenerateJWTToken("todo-api-test", demoEmail, time.Minute, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestDemoCredentialVerifier(t *testing.T) {
	v := NewDemoCredentialVerifier()

	email, err := v.Verify(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)
	assert.Equal(t, demoEmail, email)

	_, err = v.Verify(context.Background(), demoEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
