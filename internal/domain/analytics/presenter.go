package analytics

import (
	"strings"

	"progest/internal/domain/animals"
	"progest/internal/domain/batches"
)

type OwnerAnimalsView struct {
	OwnerName    string `json:"owner_name"`
	TotalAnimals int64  `json:"total_animals"`
}

type BreedAnimalsView struct {
	BreedLabel string `json:"breed_label"`
	Total      int64  `json:"total"`
}

type OwnerAreaView struct {
	OwnerName     string  `json:"owner_name"`
	TotalHectares float64 `json:"total_hectares"`
}

type StateFarmsView struct {
	RegionLabel string `json:"region_label"`
	FarmCount   int64  `json:"farm_count"`
}

// BundleView es el JSON que consumen los gráficos del dashboard BI.
type BundleView struct {
	AnimalsPerOwner []OwnerAnimalsView `json:"animals_per_owner"`
	AnimalsPerBreed []BreedAnimalsView `json:"animals_per_breed"`
	AreaPerOwner    []OwnerAreaView    `json:"area_per_owner"`
	FarmsPerState   []StateFarmsView   `json:"farms_per_state"`
}

type BatchLineView struct {
	ID           string  `json:"id"`
	Property     string  `json:"property"`
	Animal       string  `json:"animal"`
	Count        int64   `json:"count"`
	RegisteredOn *string `json:"registered_on"`
}

type SummaryView struct {
	Owners         int64           `json:"owners"`
	Properties     int64           `json:"properties"`
	AnimalKinds    int64           `json:"animal_kinds"`
	Batches        int64           `json:"batches"`
	TotalAnimals   int64           `json:"total_animals"`
	DistinctKinds  int64           `json:"distinct_kinds"`
	DistinctBreeds int64           `json:"distinct_breeds"`
	RecentBatches  []BatchLineView `json:"recent_batches"`
	Warning        string          `json:"warning,omitempty"`
}

// Label aplica el default "Não informado" a valores ausentes o en blanco.
func Label(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return NotInformed
	}
	return *s
}

// PresentBundle convierte el bundle a vista: decimales a float64 (2 decimales),
// contadores siguen enteros. Listas vacías salen como [] y no null.
func PresentBundle(b Bundle) BundleView {
	v := BundleView{
		AnimalsPerOwner: make([]OwnerAnimalsView, 0, len(b.AnimalsPerOwner)),
		AnimalsPerBreed: make([]BreedAnimalsView, 0, len(b.AnimalsPerBreed)),
		AreaPerOwner:    make([]OwnerAreaView, 0, len(b.AreaPerOwner)),
		FarmsPerState:   make([]StateFarmsView, 0, len(b.FarmsPerState)),
	}

	for _, r := range b.AnimalsPerOwner {
		v.AnimalsPerOwner = append(v.AnimalsPerOwner, OwnerAnimalsView{OwnerName: r.OwnerName, TotalAnimals: r.TotalAnimals})
	}
	for _, r := range b.AnimalsPerBreed {
		v.AnimalsPerBreed = append(v.AnimalsPerBreed, BreedAnimalsView{BreedLabel: Label(r.Breed), Total: r.Total})
	}
	for _, r := range b.AreaPerOwner {
		v.AreaPerOwner = append(v.AreaPerOwner, OwnerAreaView{
			OwnerName:     r.OwnerName,
			TotalHectares: r.TotalHectares.Round(2).InexactFloat64(),
		})
	}
	for _, r := range b.FarmsPerState {
		v.FarmsPerState = append(v.FarmsPerState, StateFarmsView{RegionLabel: Label(r.State), FarmCount: r.FarmCount})
	}
	return v
}

func PresentSummary(s Summary) SummaryView {
	v := SummaryView{
		Owners:         s.Counts.Owners,
		Properties:     s.Counts.Properties,
		AnimalKinds:    s.Counts.AnimalKinds,
		Batches:        s.Counts.Batches,
		TotalAnimals:   s.Counts.TotalAnimals,
		DistinctKinds:  s.Counts.DistinctKinds,
		DistinctBreeds: s.Counts.DistinctBreeds,
		RecentBatches:  make([]BatchLineView, 0, len(s.RecentBatches)),
		Warning:        s.Warning,
	}

	for _, l := range s.RecentBatches {
		line := BatchLineView{
			ID:       l.BatchID,
			Property: l.PropertyName,
			Animal:   animals.Label(l.AnimalKind, l.Breed),
			Count:    l.Count,
		}
		if l.RegisteredOn != nil {
			d := l.RegisteredOn.Format(batches.DisplayDateLayout)
			line.RegisteredOn = &d
		}
		v.RecentBatches = append(v.RecentBatches, line)
	}
	return v
}
