package batches

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("property, animal kind and count are required")
	ErrNegativeCount      = errors.New("count must not be negative")
	ErrCountTooLarge      = errors.New("count must not exceed 2147483647")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrAnimalKindNotFound = errors.New("animal kind not found")
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
	PropertyID   string
	AnimalKindID string
	Count        *int   // nil = no enviado
	RegisteredOn string // YYYY-MM-DD opcional
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Batch, error) {
	b := Batch{
		PropertyID:   strings.TrimSpace(in.PropertyID),
		AnimalKindID: strings.TrimSpace(in.AnimalKindID),
	}
	if b.PropertyID == "" || b.AnimalKindID == "" || in.Count == nil {
		return Batch{}, ErrInvalidInput
	}
	if *in.Count < 0 {
		return Batch{}, ErrNegativeCount
	}
	// la columna es INTEGER (int4)
	if *in.Count > math.MaxInt32 {
		return Batch{}, ErrCountTooLarge
	}

	b.ID = uuid.NewString()
	b.Count = *in.Count
	b.RegisteredOn = ParseDate(in.RegisteredOn)
	b.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, b); err != nil {
		return Batch{}, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

// ParseDate interpreta YYYY-MM-DD. Una fecha mal formada se trata como ausente,
// no como error: el lote se registra igual, sin fecha.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
