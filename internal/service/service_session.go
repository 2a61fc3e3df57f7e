package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/where-is-it/internal/config"
	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/internal/validators"
	"github.com/MKhiriev/where-is-it/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionService is the concrete implementation of SessionService.
// It handles session token issuance and verification using HMAC-SHA256.
//
// Sessions are stateless: validity is purely a function of signature and
// expiry, and nothing is persisted server-side. Revocation of
// not-yet-expired tokens is therefore impossible beyond clearing the
// client-side cookie; a revocation store would be the extension point
// if that guarantee is ever needed.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// validator checks the submitted claims before signing.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(cfg config.App, validator validators.Validator, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validator,
		logger:        logger,
	}
}

// IssueSession signs the submitted claims into a session token.
//
// The claims are trusted to describe an identity already authenticated by an
// external provider; only their shape is validated here (a well-formed email
// is required).
//
// Returns ErrInvalidDataProvided if the claims fail validation.
func (s *sessionService) IssueSession(ctx context.Context, claims models.SessionClaims) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, claims); err != nil {
		log.Err(err).Str("email", claims.Email).Msg("invalid session claims provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, claims, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Token{}, fmt.Errorf("session token generation failed: %w", err)
	}

	return token, nil
}

// ParseSession verifies tokenString and returns the decoded token.
//
// Returns ErrTokenIsExpired when the token's exp claim has passed; any other
// verification failure is returned as a wrapped error.
func (s *sessionService) ParseSession(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}

		log.Err(err).Msg("session token verification failed")
		return models.Token{}, fmt.Errorf("session token verification failed: %w", err)
	}

	return token, nil
}
