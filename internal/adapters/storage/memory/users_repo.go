package memory

import (
	"context"
	"strings"

	"progest/internal/domain/accounts"
)

type usersRepo struct {
	s *Store
}

func NewUsersRepo(s *Store) accounts.Repository {
	return &usersRepo{s: s}
}

func (r *usersRepo) Create(ctx context.Context, u accounts.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.users[u.Username]; taken {
		return accounts.ErrDuplicate
	}
	r.s.users[u.Username] = u
	r.s.userOrder = append(r.s.userOrder, u.Username)
	return nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[strings.TrimSpace(username)]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}
