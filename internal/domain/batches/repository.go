package batches

import "context"

type Repository interface {
	// Create devuelve ErrPropertyNotFound / ErrAnimalKindNotFound si falla la referencia.
	Create(ctx context.Context, b Batch) error
	// List ordena por nombre de propiedad y luego por tipo de animal.
	List(ctx context.Context) ([]Listing, error)
}
