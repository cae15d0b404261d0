package animals

import "context"

type Repository interface {
	Create(ctx context.Context, k Kind) error
	// List ordena por tipo.
	List(ctx context.Context) ([]Kind, error)
}
