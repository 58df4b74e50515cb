package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mwalther/todo-api/internal/config"
	"github.com/mwalther/todo-api/internal/logger"
	"github.com/mwalther/todo-api/internal/utils"
	"github.com/mwalther/todo-api/models"
)

// authService is the concrete implementation of AuthService.
// It delegates credential checking to a pluggable [CredentialVerifier] and
// handles the JWT lifecycle with the configured signing parameters.
type authService struct {
	// verifier checks email/password pairs. The wiring decides whether this
	// is the demo fixed-pair verifier or a real identity provider.
	verifier CredentialVerifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// An empty value is a deployment misconfiguration reported per request
	// as ErrNoTokenSignKey.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given verifier and
// populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(verifier CredentialVerifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		verifier:      verifier,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates the supplied credentials and issues a signed token.
//
// Returns:
//   - ErrNoTokenSignKey when the signing secret is not configured — checked
//     before anything else because no login can succeed without it.
//   - ErrInvalidDataProvided when either credential field is empty.
//   - ErrInvalidCredentials when the verifier rejects the pair.
//   - A wrapped ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.tokenSignKey == "" {
		log.Error().Msg("no token sign key provided in configuration")
		return models.Token{}, ErrNoTokenSignKey
	}

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Msg("empty credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	email, err := a.verifier.Verify(ctx, credentials.Email, credentials.Password)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("credential verification failed")
		return models.Token{}, err
	}

	log.Debug().Str("email", email).Msg("user successfully authenticated")

	token, err := utils.GenerateJWTToken(a.tokenIssuer, email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Returns:
//   - ErrNoTokenSignKey when the signing secret is not configured — checked
//     first so a misconfigured deployment reports 500 rather than 401/403.
//   - ErrNoTokenProvided when tokenString is empty.
//   - ErrTokenIsExpiredOrInvalid on any validation failure (expired, wrong
//     issuer, malformed); callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		logger.FromContext(ctx).Error().Msg("no token sign key provided in configuration")
		return models.Token{}, ErrNoTokenSignKey
	}

	if tokenString == "" {
		return models.Token{}, ErrNoTokenProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
