package properties

import "context"

type Repository interface {
	// Create devuelve ErrOwnerNotFound si el owner referenciado no existe.
	Create(ctx context.Context, p Property) error
	// List devuelve las propiedades ordenadas por nombre, con el owner resuelto.
	List(ctx context.Context) ([]Listing, error)
}
