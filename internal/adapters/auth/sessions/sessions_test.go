package sessions

import (
	"context"
	"testing"
	"time"

	"progest/internal/ports/auth"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMemoryStore_CreateVerifyRevoke(t *testing.T) {
	ctx := context.Background()
	var active int
	s := NewMemoryStore(WithActiveGauge(func(n int) { active = n }))

	sess, err := s.Create(ctx, auth.Claims{UserID: "u1", Username: "ana"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, 1, active)

	claims, err := s.Verify(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)

	require.NoError(t, s.Revoke(ctx, sess.Token))
	assert.Equal(t, 0, active)

	_, err = s.Verify(ctx, sess.Token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	// revocar de nuevo no falla
	assert.NoError(t, s.Revoke(ctx, sess.Token))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(WithClock(c.now))

	sess, err := s.Create(ctx, auth.Claims{UserID: "u1"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, c.t.Add(time.Minute), sess.ExpiresAt)

	c.t = c.t.Add(time.Minute)
	_, err = s.Verify(ctx, sess.Token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestMemoryStore_Errors(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Create(context.Background(), auth.Claims{UserID: "u1"}, 0)
	assert.ErrorIs(t, err, ErrInvalidTTL)

	_, err = s.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = s.Verify(context.Background(), "unknown")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestMemoryStore_TokensAreDistinct(t *testing.T) {
	s := NewMemoryStore()
	a, err := s.Create(context.Background(), auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	b, err := s.Create(context.Background(), auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestRedisStore_UnreachableIsNotNotFound(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := NewRedisStoreWithClient(client)
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.Verify(context.Background(), "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrSessionNotFound)

	_, err = s.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	assert.Equal(t, "progest:session:tok", s.key("tok"))
}
