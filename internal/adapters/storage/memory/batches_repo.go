package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"progest/internal/domain/batches"
)

type batchesRepo struct {
	s *Store
}

func NewBatchesRepo(s *Store) batches.Repository {
	return &batchesRepo{s: s}
}

func (r *batchesRepo) Create(ctx context.Context, b batches.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("batch id required")
	}
	if _, exists := r.s.batches[b.ID]; exists {
		return errors.New("batch already exists")
	}
	if _, ok := r.s.properties[b.PropertyID]; !ok {
		return batches.ErrPropertyNotFound
	}
	if _, ok := r.s.kinds[b.AnimalKindID]; !ok {
		return batches.ErrAnimalKindNotFound
	}

	r.s.batches[b.ID] = b
	r.s.batchOrder = append(r.s.batchOrder, b.ID)
	return nil
}

func (r *batchesRepo) List(ctx context.Context) ([]batches.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]batches.Listing, 0, len(r.s.batchOrder))
	for _, id := range r.s.batchOrder {
		b := r.s.batches[id]
		k := r.s.kinds[b.AnimalKindID]
		out = append(out, batches.Listing{
			Batch:        b,
			PropertyName: r.s.properties[b.PropertyID].Name,
			AnimalKind:   k.Kind,
			Breed:        k.Breed,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PropertyName != out[j].PropertyName {
			return out[i].PropertyName < out[j].PropertyName
		}
		return out[i].AnimalKind < out[j].AnimalKind
	})
	return out, nil
}
