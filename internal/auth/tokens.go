package auth

import (
	"encoding/json/v2"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/shelflogapp/shelflog-server/internal/id"
)

const (
	tokenIssuer   = "shelflog-server"
	tokenAudience = "shelflog-web"

	// The server has exactly one user; the subject names the role, not an account.
	tokenSubject = "owner"
)

// TokenService handles PASETO session token generation and verification.
// Each successful login mints its own token, so the session gate is a
// per-session claim rather than shared process state.
type TokenService struct {
	symmetricKey    paseto.V4SymmetricKey
	sessionDuration time.Duration
}

// NewTokenService creates a new token service from a 32-byte symmetric key.
func NewTokenService(key []byte, sessionDuration time.Duration) (*TokenService, error) {
	symmetricKey, err := paseto.V4SymmetricKeyFromBytes(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create PASETO symmetric key: %w", err)
	}

	return &TokenService{
		symmetricKey:    symmetricKey,
		sessionDuration: sessionDuration,
	}, nil
}

// IssueSessionToken creates a new PASETO v4.local session token.
func (s *TokenService) IssueSessionToken() (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuer(tokenIssuer)
	token.SetSubject(tokenSubject)
	token.SetAudience(tokenAudience)
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.sessionDuration))

	tokenID, err := id.Generate("sess")
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}
	token.SetJti(tokenID)

	return token.V4Encrypt(s.symmetricKey, nil), nil
}

// VerifySessionToken verifies and parses a PASETO session token.
// Returns the claims if valid, or an error if the token is invalid or expired.
func (s *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.Subject(tokenSubject))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(s.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	var claims SessionClaims
	if err := json.Unmarshal(token.ClaimsJSON(), &claims); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}

	return &claims, nil
}
