package owners

import "context"

type Repository interface {
	// Create devuelve ErrDuplicate si el tax id ya existe.
	Create(ctx context.Context, o Owner) error
	// List devuelve los owners del más nuevo al más viejo.
	List(ctx context.Context) ([]Owner, error)
}
