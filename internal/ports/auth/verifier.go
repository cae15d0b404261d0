package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionStore mantiene el mapeo explícito token -> identidad.
type SessionStore interface {
	AuthVerifier

	Create(ctx context.Context, claims Claims, ttl time.Duration) (Session, error)
	Revoke(ctx context.Context, token string) error
}
