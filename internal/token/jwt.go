// Package token signs and verifies bearer tokens with composite secrets.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dayboard/dayboard-server/internal/model"
)

// Claims are the token claims: the owner's email plus issued-at and expiry.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC. Each purpose
// has its own process-wide key and lifespan; the effective signing secret
// for a token is the purpose key concatenated with the user's secret
// component, so replacing the stored component invalidates every token
// signed under the old one.
type JWT struct {
	keys      map[model.TokenPurpose][]byte
	lifespans map[model.TokenPurpose]time.Duration
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a token manager with per-purpose keys and lifespans.
func NewJWT(authKey, refreshKey string, authLifespan, refreshLifespan time.Duration) *JWT {
	return &JWT{
		keys: map[model.TokenPurpose][]byte{
			model.PurposeAuth:    []byte(authKey),
			model.PurposeRefresh: []byte(refreshKey),
		},
		lifespans: map[model.TokenPurpose]time.Duration{
			model.PurposeAuth:    authLifespan,
			model.PurposeRefresh: refreshLifespan,
		},
	}
}

func (j *JWT) signingSecret(purpose model.TokenPurpose, component string) ([]byte, error) {
	key, ok := j.keys[purpose]
	if !ok {
		return nil, fmt.Errorf("unknown token purpose %q", purpose)
	}
	return append(append([]byte{}, key...), component...), nil
}

// Mint builds a signed token for email under the composite secret of the
// given purpose and the user's secret component.
func (j *JWT) Mint(email string, purpose model.TokenPurpose, component string) (string, error) {
	secret, err := j.signingSecret(purpose, component)
	if err != nil {
		return "", err
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.lifespans[purpose])),
		},
		Email: email,
	})

	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}

	return signed, nil
}

// DecodeUnverified parses the email claim without checking the signature.
// The result must only be used to look up the secret component to verify
// with, never to authorize anything.
func (j *JWT) DecodeUnverified(tokenString string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", model.ErrTokenInvalid
	}
	if claims.Email == "" {
		return "", model.ErrTokenInvalid
	}
	return claims.Email, nil
}

// Verify recomputes the composite secret and checks signature and expiry.
// All failures collapse into model.ErrTokenInvalid so callers can not tell
// a forged token from an expired one.
func (j *JWT) Verify(tokenString string, purpose model.TokenPurpose, component string) (string, error) {
	secret, err := j.signingSecret(purpose, component)
	if err != nil {
		return "", err
	}

	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return "", model.ErrTokenInvalid
	}
	if claims.Email == "" {
		return "", model.ErrTokenInvalid
	}

	return claims.Email, nil
}
