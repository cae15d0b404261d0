package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"progest/internal/domain/properties"
)

type propertiesRepo struct {
	s *Store
}

func NewPropertiesRepo(s *Store) properties.Repository {
	return &propertiesRepo{s: s}
}

func (r *propertiesRepo) Create(ctx context.Context, p properties.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("property id required")
	}
	if _, exists := r.s.properties[p.ID]; exists {
		return errors.New("property already exists")
	}
	if _, ok := r.s.owners[p.OwnerID]; !ok {
		return properties.ErrOwnerNotFound
	}

	r.s.properties[p.ID] = p
	return nil
}

func (r *propertiesRepo) List(ctx context.Context) ([]properties.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]properties.Listing, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, properties.Listing{
			Property:  p,
			OwnerName: r.s.owners[p.OwnerID].Name,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
