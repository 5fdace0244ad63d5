package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single externally visible verification failure.
// Malformed tokens, signature mismatches and expired tokens all collapse
// into it so callers cannot distinguish why a token was rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenCodec signs and verifies HS256 bearer tokens. The signing secret is
// provided once at construction and held for the codec's lifetime; nothing
// else in the application touches raw claims.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the process-wide secret and token
// lifetime. A non-positive ttl falls back to seven days.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given subject (user id) with the codec's
// expiration window. Standard claims: sub, exp, iat.
func (tc *TokenCodec) Issue(subjectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// Verify parses and validates a signed token and returns its subject.
// Any failure is reported as ErrInvalidToken.
func (tc *TokenCodec) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
