package accounts

import "context"

type Repository interface {
	// Create devuelve ErrDuplicate si el username ya existe.
	Create(ctx context.Context, u User) error
	// GetByUsername devuelve ErrNotFound si no existe.
	GetByUsername(ctx context.Context, username string) (User, error)
}
