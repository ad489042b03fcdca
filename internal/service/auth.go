package service

import (
	"crypto/subtle"
	"log/slog"

	"github.com/shelflogapp/shelflog-server/internal/auth"
	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
)

// AuthService implements the password gate: one shared site password, and a
// PASETO session token per successful login.
type AuthService struct {
	tokens       *auth.TokenService
	sitePassword string
	logger       *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(tokens *auth.TokenService, sitePassword string, logger *slog.Logger) *AuthService {
	return &AuthService{
		tokens:       tokens,
		sitePassword: sitePassword,
		logger:       logger,
	}
}

// Login checks the submitted password against the configured site password
// and returns a fresh session token on success.
func (s *AuthService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.sitePassword)) != 1 {
		s.logger.Warn("Login attempt with incorrect password")
		return "", domainerrors.InvalidCredentials("incorrect password")
	}

	token, err := s.tokens.IssueSessionToken()
	if err != nil {
		return "", domainerrors.Internal("failed to issue session token").WithCause(err)
	}

	s.logger.Info("Login successful")
	return token, nil
}

// Verify reports whether a session token is valid and unexpired.
func (s *AuthService) Verify(token string) (*auth.SessionClaims, error) {
	claims, err := s.tokens.VerifySessionToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid session").WithCause(err)
	}
	return claims, nil
}
