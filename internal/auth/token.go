package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/earenas/taskboard/internal/apperr"
)

// TokenService issues and validates signed, time-bounded access tokens.
// Tokens are HS256 JWTs carrying the username as subject; validity is purely
// cryptographic and time based, nothing is stored server side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret. ttl is the
// default validity window for Issue.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue creates a token for subject valid for the default TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a token for subject expiring at now + ttl (UTC).
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token string and returns its subject.
// A bad signature, malformed structure, past expiry or empty subject all
// fail the same way; callers are not told which.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", apperr.New(apperr.Unauthenticated, "Could not validate credentials")
	}
	if claims.Subject == "" {
		return "", apperr.New(apperr.Unauthenticated, "Could not validate credentials")
	}
	return claims.Subject, nil
}

// TTL returns the default token validity window.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
