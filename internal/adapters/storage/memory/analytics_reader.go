package memory

import (
	"context"
	"sort"
	"strings"

	"progest/internal/domain/analytics"

	"github.com/shopspring/decimal"
)

// AnalyticsReader resuelve las consultas del dashboard sobre el Store,
// replicando los joins internos y agrupamientos que hace postgres.
type AnalyticsReader struct {
	s *Store
}

func NewAnalyticsReader(s *Store) *AnalyticsReader {
	return &AnalyticsReader{s: s}
}

var _ analytics.Reader = (*AnalyticsReader)(nil)

// blankToNil recorta y colapsa ausente y en blanco en un mismo grupo,
// igual que NULLIF(TRIM(x), '') en postgres.
func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func labelKey(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// lessNullsLast ordena etiquetas ascendente con el grupo nulo al final.
func lessNullsLast(a, b *string) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	return *a < *b
}

func (r *AnalyticsReader) AnimalsPerOwner(ctx context.Context) ([]analytics.OwnerAnimals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	totals := map[string]int64{}
	for _, b := range r.s.batches {
		p, ok := r.s.properties[b.PropertyID]
		if !ok {
			continue
		}
		if _, ok := r.s.owners[p.OwnerID]; !ok {
			continue
		}
		totals[p.OwnerID] += int64(b.Count)
	}

	out := make([]analytics.OwnerAnimals, 0, len(totals))
	for id, total := range totals {
		out = append(out, analytics.OwnerAnimals{OwnerID: id, OwnerName: r.s.owners[id].Name, TotalAnimals: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalAnimals != out[j].TotalAnimals {
			return out[i].TotalAnimals > out[j].TotalAnimals
		}
		if out[i].OwnerName != out[j].OwnerName {
			return out[i].OwnerName < out[j].OwnerName
		}
		return out[i].OwnerID < out[j].OwnerID
	})
	return out, nil
}

func (r *AnalyticsReader) AnimalsPerBreed(ctx context.Context) ([]analytics.BreedAnimals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type group struct {
		breed *string
		total int64
	}
	groups := map[string]*group{}
	for _, b := range r.s.batches {
		k, ok := r.s.kinds[b.AnimalKindID]
		if !ok {
			continue
		}
		breed := blankToNil(k.Breed)
		key := labelKey(breed)
		g, ok := groups[key]
		if !ok {
			g = &group{breed: breed}
			groups[key] = g
		}
		g.total += int64(b.Count)
	}

	out := make([]analytics.BreedAnimals, 0, len(groups))
	for _, g := range groups {
		out = append(out, analytics.BreedAnimals{Breed: g.breed, Total: g.total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return lessNullsLast(out[i].Breed, out[j].Breed)
	})
	return out, nil
}

func (r *AnalyticsReader) AreaPerOwner(ctx context.Context) ([]analytics.OwnerArea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	totals := map[string]decimal.Decimal{}
	for _, p := range r.s.properties {
		if _, ok := r.s.owners[p.OwnerID]; !ok {
			continue
		}
		totals[p.OwnerID] = totals[p.OwnerID].Add(p.AreaHectares)
	}

	out := make([]analytics.OwnerArea, 0, len(totals))
	for id, total := range totals {
		out = append(out, analytics.OwnerArea{OwnerID: id, OwnerName: r.s.owners[id].Name, TotalHectares: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalHectares.Cmp(out[j].TotalHectares); c != 0 {
			return c > 0
		}
		if out[i].OwnerName != out[j].OwnerName {
			return out[i].OwnerName < out[j].OwnerName
		}
		return out[i].OwnerID < out[j].OwnerID
	})
	return out, nil
}

func (r *AnalyticsReader) FarmsPerState(ctx context.Context) ([]analytics.StateFarms, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type group struct {
		state *string
		count int64
	}
	groups := map[string]*group{}
	for _, p := range r.s.properties {
		state := blankToNil(&p.State)
		key := labelKey(state)
		g, ok := groups[key]
		if !ok {
			g = &group{state: state}
			groups[key] = g
		}
		g.count++
	}

	out := make([]analytics.StateFarms, 0, len(groups))
	for _, g := range groups {
		out = append(out, analytics.StateFarms{State: g.state, FarmCount: g.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FarmCount != out[j].FarmCount {
			return out[i].FarmCount > out[j].FarmCount
		}
		return lessNullsLast(out[i].State, out[j].State)
	})
	return out, nil
}

func (r *AnalyticsReader) SummaryCounts(ctx context.Context) (analytics.SummaryCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c := analytics.SummaryCounts{
		Owners:      int64(len(r.s.owners)),
		Properties:  int64(len(r.s.properties)),
		AnimalKinds: int64(len(r.s.kinds)),
		Batches:     int64(len(r.s.batches)),
	}
	for _, b := range r.s.batches {
		c.TotalAnimals += int64(b.Count)
	}

	kinds := map[string]struct{}{}
	breeds := map[string]struct{}{}
	for _, k := range r.s.kinds {
		kinds[k.Kind] = struct{}{}
		if b := blankToNil(k.Breed); b != nil {
			breeds[*b] = struct{}{}
		}
	}
	c.DistinctKinds = int64(len(kinds))
	c.DistinctBreeds = int64(len(breeds))
	return c, nil
}

func (r *AnalyticsReader) RecentBatches(ctx context.Context) ([]analytics.BatchLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type line struct {
		analytics.BatchLine
		seq int
	}
	lines := make([]line, 0, len(r.s.batchOrder))
	for i, id := range r.s.batchOrder {
		b := r.s.batches[id]
		k := r.s.kinds[b.AnimalKindID]
		lines = append(lines, line{
			BatchLine: analytics.BatchLine{
				BatchID:      b.ID,
				PropertyName: r.s.properties[b.PropertyID].Name,
				AnimalKind:   k.Kind,
				Breed:        blankToNil(k.Breed),
				Count:        int64(b.Count),
				RegisteredOn: b.RegisteredOn,
			},
			seq: i,
		})
	}

	// fecha desc, sin fecha al final; después el más nuevo primero
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].RegisteredOn, lines[j].RegisteredOn
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		}
		return lines[i].seq > lines[j].seq
	})

	out := make([]analytics.BatchLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.BatchLine)
	}
	return out, nil
}
