package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"progest/internal/domain/animals"
)

type animalsRepo struct {
	s *Store
}

func NewAnimalsRepo(s *Store) animals.Repository {
	return &animalsRepo{s: s}
}

func (r *animalsRepo) Create(ctx context.Context, k animals.Kind) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(k.ID) == "" {
		return errors.New("animal kind id required")
	}
	if _, exists := r.s.kinds[k.ID]; exists {
		return errors.New("animal kind already exists")
	}
	r.s.kinds[k.ID] = k
	return nil
}

func (r *animalsRepo) List(ctx context.Context) ([]animals.Kind, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]animals.Kind, 0, len(r.s.kinds))
	for _, k := range r.s.kinds {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Label() < out[j].Label()
	})
	return out, nil
}
