package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("animal kind is required")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Kind  string
	Breed string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Kind, error) {
	kind := strings.TrimSpace(in.Kind)
	if kind == "" {
		return Kind{}, ErrInvalidInput
	}

	k := Kind{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: s.now().UTC(),
	}
	// raza vacía se guarda como NULL, así las agregaciones la agrupan como "no informada"
	if breed := strings.TrimSpace(in.Breed); breed != "" {
		k.Breed = &breed
	}

	if err := s.repo.Create(ctx, k); err != nil {
		return Kind{}, err
	}
	return k, nil
}

func (s *Service) List(ctx context.Context) ([]Kind, error) {
	return s.repo.List(ctx)
}
