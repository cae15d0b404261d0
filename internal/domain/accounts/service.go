package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"progest/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrDuplicate          = errors.New("username already taken")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

// bcrypt ignora/rechaza lo que pase de 72 bytes
const maxPasswordBytes = 72

type Service struct {
	repo     Repository
	sessions auth.SessionStore
	ttl      time.Duration
	cost     int
	now      func() time.Time
}

type Options struct {
	SessionTTL time.Duration
	BcryptCost int
}

func NewService(repo Repository, sessions auth.SessionStore, opts Options) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		ttl:      opts.SessionTTL,
		cost:     opts.BcryptCost,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}
	if len(password) > maxPasswordBytes {
		return User{}, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate valida credenciales sin abrir sesión (lo usa también el CLI).
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Login autentica y crea una sesión nueva en el store.
func (s *Service) Login(ctx context.Context, username, password string) (auth.Session, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return auth.Session{}, err
	}
	return s.sessions.Create(ctx, auth.Claims{UserID: u.ID, Username: u.Username}, s.ttl)
}

// Logout invalida el token. Es idempotente: un token desconocido no es error.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	err := s.sessions.Revoke(ctx, token)
	if errors.Is(err, auth.ErrSessionNotFound) {
		return nil
	}
	return err
}
