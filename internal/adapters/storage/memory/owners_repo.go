package memory

import (
	"context"
	"errors"
	"strings"

	"progest/internal/domain/owners"
)

type ownersRepo struct {
	s *Store
}

func NewOwnersRepo(s *Store) owners.Repository {
	return &ownersRepo{s: s}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.s.owners[o.ID]; exists {
		return errors.New("owner already exists")
	}
	if _, taken := r.s.taxIDs[o.TaxID]; taken {
		return owners.ErrDuplicate
	}

	r.s.owners[o.ID] = o
	r.s.taxIDs[o.TaxID] = o.ID
	r.s.ownerOrder = append(r.s.ownerOrder, o.ID)
	return nil
}

// List devuelve del más nuevo al más viejo (orden inverso de inserción).
func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.s.ownerOrder))
	for i := len(r.s.ownerOrder) - 1; i >= 0; i-- {
		out = append(out, r.s.owners[r.s.ownerOrder[i]])
	}
	return out, nil
}
