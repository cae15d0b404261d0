package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotInformed es la etiqueta para raza/estado ausentes.
const NotInformed = "Não informado"

// OwnerAnimals es una fila de "animales por owner" (Query A).
type OwnerAnimals struct {
	OwnerID      string
	OwnerName    string
	TotalAnimals int64
}

// BreedAnimals es una fila de "animales por raza" (Query B). Breed nil = no informada.
type BreedAnimals struct {
	Breed *string
	Total int64
}

// OwnerArea es una fila de "área por owner" (Query C).
type OwnerArea struct {
	OwnerID       string
	OwnerName     string
	TotalHectares decimal.Decimal
}

// StateFarms es una fila de "fazendas por estado" (Query D). State nil = no informado.
type StateFarms struct {
	State     *string
	FarmCount int64
}

// Bundle junta las cuatro consultas del dashboard BI.
type Bundle struct {
	AnimalsPerOwner []OwnerAnimals
	AnimalsPerBreed []BreedAnimals
	AreaPerOwner    []OwnerArea
	FarmsPerState   []StateFarms
}

// SummaryCounts son los contadores escalares del dashboard principal.
type SummaryCounts struct {
	Owners         int64
	Properties     int64
	AnimalKinds    int64
	Batches        int64
	TotalAnimals   int64
	DistinctKinds  int64
	DistinctBreeds int64
}

// BatchLine es un lote con propiedad y tipo de animal resueltos, para el listado reciente.
type BatchLine struct {
	BatchID      string
	PropertyName string
	AnimalKind   string
	Breed        *string
	Count        int64
	RegisteredOn *time.Time
}

// Summary es el resultado del dashboard principal. Warning != "" indica que se
// usó el fallback en cero.
type Summary struct {
	Counts        SummaryCounts
	RecentBatches []BatchLine
	Warning       string
}
