package batches

import "time"

// DateLayout es el formato que aceptamos para registered_on.
const DateLayout = "2006-01-02"

// Batch (lote) registra una cantidad de animales de un tipo en una propiedad.
type Batch struct {
	ID           string
	PropertyID   string
	AnimalKindID string
	Count        int

	RegisteredOn *time.Time // nil = fecha no informada
	CreatedAt    time.Time
}

// Listing es el lote con propiedad y tipo de animal resueltos.
type Listing struct {
	Batch
	PropertyName string
	AnimalKind   string
	Breed        *string
}
