package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSigningKey = errors.New("token: missing signing key")
	ErrInvalidToken      = errors.New("token: invalid token")
	ErrExpiredToken      = errors.New("token: token is expired")
)

// Service issues and verifies signed identity tokens. The signing key is
// injected at construction and never read from process-global state.
type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService creates a token service. An empty secret is a configuration
// fault and is rejected here so it fails at startup, not at call time.
func NewService(secret string, expiry time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}, nil
}

// Issue produces a signed token asserting the given subject id, expiring
// after the service's configured lifetime.
func (s *Service) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// subject id. Expired tokens are reported as ErrExpiredToken, every other
// failure as ErrInvalidToken.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
