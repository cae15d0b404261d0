package sessions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"progest/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
	ErrInvalidTTL = errors.New("session ttl must be positive")
)

// MemoryStore implementa auth.SessionStore en memoria. Las sesiones vencidas
// se descartan al consultarlas y en cada Create.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]auth.Session

	now func() time.Time
	// onChange recibe la cantidad de sesiones activas (gauge de métricas)
	onChange func(active int)
}

type MemoryOption func(*MemoryStore)

func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

func WithActiveGauge(fn func(active int)) MemoryOption {
	return func(s *MemoryStore) { s.onChange = fn }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]auth.Session),
		now:      time.Now,
		onChange: func(int) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ auth.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Create(ctx context.Context, claims auth.Claims, ttl time.Duration) (auth.Session, error) {
	if ttl <= 0 {
		return auth.Session{}, ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	sess := auth.Session{
		Token:     uuid.NewString(),
		Claims:    claims,
		ExpiresAt: now.Add(ttl),
	}
	s.sessions[sess.Token] = sess
	s.onChange(len(s.sessions))
	return sess, nil
}

func (s *MemoryStore) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return auth.Claims{}, auth.ErrSessionNotFound
	}
	if !s.now().Before(sess.ExpiresAt) {
		delete(s.sessions, token)
		s.onChange(len(s.sessions))
		return auth.Claims{}, auth.ErrSessionNotFound
	}
	return sess.Claims, nil
}

// Revoke es idempotente: revocar un token desconocido no es error.
func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[strings.TrimSpace(token)]; ok {
		delete(s.sessions, strings.TrimSpace(token))
		s.onChange(len(s.sessions))
	}
	return nil
}

func (s *MemoryStore) pruneLocked(now time.Time) {
	for token, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
