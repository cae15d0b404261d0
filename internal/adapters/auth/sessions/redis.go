package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"progest/internal/ports/auth"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "progest:session:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore guarda cada sesión como un JSON con TTL, así la expiración la
// resuelve redis y varias réplicas comparten las sesiones.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

// storedSession es lo que se serializa en el valor de la key.
type storedSession struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewRedisStore conecta y hace ping antes de devolver el store.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis session store: %w", err)
	}

	return NewRedisStoreWithClient(client), nil
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		now:       time.Now,
	}
}

var _ auth.SessionStore = (*RedisStore)(nil)

func (s *RedisStore) key(token string) string {
	return s.keyPrefix + token
}

func (s *RedisStore) Create(ctx context.Context, claims auth.Claims, ttl time.Duration) (auth.Session, error) {
	if ttl <= 0 {
		return auth.Session{}, ErrInvalidTTL
	}

	sess := auth.Session{
		Token:     uuid.NewString(),
		Claims:    claims,
		ExpiresAt: s.now().Add(ttl),
	}

	b, err := json.Marshal(storedSession{
		UserID:    claims.UserID,
		Username:  claims.Username,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return auth.Session{}, fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sess.Token), b, ttl).Err(); err != nil {
		return auth.Session{}, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return auth.Claims{}, auth.ErrSessionNotFound
	}
	if err != nil {
		return auth.Claims{}, fmt.Errorf("load session: %w", err)
	}

	var st storedSession
	if err := json.Unmarshal(raw, &st); err != nil {
		return auth.Claims{}, fmt.Errorf("decode session: %w", err)
	}
	return auth.Claims{UserID: st.UserID, Username: st.Username}, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
