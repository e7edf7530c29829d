package auth

import (
	"errors"
	"time"

	"ctchen222/Movie-Catalog/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, tampered or wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for tokens whose signature verifies but whose
	// expiry has elapsed.
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the payload embedded in every access token. Subject carries the
// username the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed, time-limited bearer tokens. It is
// immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret          []byte
	defaultLifetime time.Duration
}

// NewTokenManager builds a TokenManager from the process configuration.
// Config validation has already pinned the algorithm to HS256 and guaranteed
// a non-empty secret.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret:          []byte(cfg.SecretKey),
		defaultLifetime: cfg.TokenLifetime(),
	}
}

// Issue creates a signed token for the given subject, expiring after the
// configured default lifetime.
func (m *TokenManager) Issue(subject string) (string, error) {
	return m.IssueWithLifetime(subject, m.defaultLifetime)
}

// IssueWithLifetime creates a signed token for the given subject with an
// explicit lifetime.
func (m *TokenManager) IssueWithLifetime(subject string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the token's signature and expiry, in that order, and returns
// the embedded subject. The signature is validated before any claim is
// trusted, so a forged expiry cannot bypass verification.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
