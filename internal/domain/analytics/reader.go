package analytics

import "context"

// Reader son las consultas de solo lectura que el Entity Store debe resolver.
// Cada método devuelve filas ya agrupadas y ordenadas de mayor a menor
// (empates por etiqueta ascendente).
type Reader interface {
	AnimalsPerOwner(ctx context.Context) ([]OwnerAnimals, error)
	AnimalsPerBreed(ctx context.Context) ([]BreedAnimals, error)
	AreaPerOwner(ctx context.Context) ([]OwnerArea, error)
	FarmsPerState(ctx context.Context) ([]StateFarms, error)

	SummaryCounts(ctx context.Context) (SummaryCounts, error)
	// RecentBatches ordena por fecha de registro desc (sin fecha al final).
	RecentBatches(ctx context.Context) ([]BatchLine, error)
}
