package properties

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput  = errors.New("name, municipality, state, area and owner are required")
	ErrNegativeArea  = errors.New("area must not be negative")
	ErrAreaTooLarge  = errors.New("area must be below 100000000 hectares")
	ErrOwnerNotFound = errors.New("owner not found")
)

// maxArea es el primer valor que no entra en NUMERIC(10,2).
var maxArea = decimal.NewFromInt(100_000_000)

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
	Name         string
	Municipality string
	State        string
	AreaHectares *decimal.Decimal // nil = no enviado
	OwnerID      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Property, error) {
	p := Property{
		Name:         strings.TrimSpace(in.Name),
		Municipality: strings.TrimSpace(in.Municipality),
		State:        strings.TrimSpace(in.State),
		OwnerID:      strings.TrimSpace(in.OwnerID),
	}
	if p.Name == "" || p.Municipality == "" || p.State == "" || p.OwnerID == "" || in.AreaHectares == nil {
		return Property{}, ErrInvalidInput
	}
	if in.AreaHectares.IsNegative() {
		return Property{}, ErrNegativeArea
	}

	p.AreaHectares = in.AreaHectares.Round(2)
	if p.AreaHectares.GreaterThanOrEqual(maxArea) {
		return Property{}, ErrAreaTooLarge
	}

	p.ID = uuid.NewString()
	p.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, p); err != nil {
		return Property{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}
