package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = time.Hour

// Claims are the identity fields embedded in a bearer token.
// Subject carries the account ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// self-contained: verification needs only the secret, never the database.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService fails if the secret is empty; callers treat that as a
// startup-fatal misconfiguration, not a per-request error.
func NewTokenService(secret []byte) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &TokenService{secret: secret, ttl: TokenTTL}, nil
}

// Issue signs a token for the given account, expiring TokenTTL from now.
func (s *TokenService) Issue(email, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// The specific cause (malformed, bad signature, expired) is wrapped around
// domain.ErrTokenInvalid so callers can log it without exposing it.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
