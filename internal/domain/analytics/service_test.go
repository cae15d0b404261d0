package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fake reader
// -------------------------

type fakeReader struct {
	fail  map[string]error
	calls []string

	owners  []OwnerAnimals
	breeds  []BreedAnimals
	area    []OwnerArea
	states  []StateFarms
	counts  SummaryCounts
	batches []BatchLine
}

func (f *fakeReader) step(name string) error {
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeReader) AnimalsPerOwner(ctx context.Context) ([]OwnerAnimals, error) {
	return f.owners, f.step(QueryAnimalsPerOwner)
}

func (f *fakeReader) AnimalsPerBreed(ctx context.Context) ([]BreedAnimals, error) {
	return f.breeds, f.step(QueryAnimalsPerBreed)
}

func (f *fakeReader) AreaPerOwner(ctx context.Context) ([]OwnerArea, error) {
	return f.area, f.step(QueryAreaPerOwner)
}

func (f *fakeReader) FarmsPerState(ctx context.Context) ([]StateFarms, error) {
	return f.states, f.step(QueryFarmsPerState)
}

func (f *fakeReader) SummaryCounts(ctx context.Context) (SummaryCounts, error) {
	return f.counts, f.step(QuerySummaryCounts)
}

func (f *fakeReader) RecentBatches(ctx context.Context) ([]BatchLine, error) {
	return f.batches, f.step(QueryRecentBatches)
}

func strPtr(s string) *string { return &s }

func sampleReader() *fakeReader {
	return &fakeReader{
		fail:   map[string]error{},
		owners: []OwnerAnimals{{OwnerID: "o1", OwnerName: "Ana", TotalAnimals: 20}},
		breeds: []BreedAnimals{{Breed: strPtr("Nelore"), Total: 15}, {Breed: nil, Total: 5}},
		area:   []OwnerArea{{OwnerID: "o1", OwnerName: "Ana", TotalHectares: decimal.RequireFromString("15.50")}},
		states: []StateFarms{{State: strPtr("MT"), FarmCount: 2}},
		counts: SummaryCounts{Owners: 1, Properties: 2, AnimalKinds: 2, Batches: 1, TotalAnimals: 20, DistinctKinds: 1, DistinctBreeds: 1},
		batches: []BatchLine{
			{BatchID: "b1", PropertyName: "Santa Rita", AnimalKind: "Bovino", Breed: strPtr("Nelore"), Count: 20},
		},
	}
}

// -------------------------
// Bundle
// -------------------------

func TestService_Bundle_RunsAllFourQueries(t *testing.T) {
	reader := sampleReader()
	observed := map[string]int{}
	svc := NewService(reader, nil, func(q string, _ time.Duration, err error) {
		assert.NoError(t, err)
		observed[q]++
	})

	b, err := svc.Bundle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{QueryAnimalsPerOwner, QueryAnimalsPerBreed, QueryAreaPerOwner, QueryFarmsPerState}, reader.calls)
	assert.Len(t, observed, 4)
	assert.Equal(t, int64(20), b.AnimalsPerOwner[0].TotalAnimals)
	assert.Len(t, b.AnimalsPerBreed, 2)
}

func TestService_Bundle_AtomicFailure(t *testing.T) {
	reader := sampleReader()
	boom := errors.New("connection refused")
	reader.fail[QueryAnimalsPerBreed] = boom

	var failed []string
	svc := NewService(reader, nil, func(q string, _ time.Duration, err error) {
		if err != nil {
			failed = append(failed, q)
		}
	})

	b, err := svc.Bundle(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, QueryAnimalsPerBreed, qe.Query)

	// nada parcial: el bundle vuelve vacío y no se ejecutan las consultas restantes
	assert.Empty(t, b.AnimalsPerOwner)
	assert.Equal(t, []string{QueryAnimalsPerOwner, QueryAnimalsPerBreed}, reader.calls)
	assert.Equal(t, []string{QueryAnimalsPerBreed}, failed)
}

// -------------------------
// Summary
// -------------------------

func TestService_Summary_OK(t *testing.T) {
	svc := NewService(sampleReader(), nil, nil)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.Warning)
	assert.Equal(t, int64(20), s.Counts.TotalAnimals)
	assert.Len(t, s.RecentBatches, 1)
}

func TestService_Summary_FallsBackToZero(t *testing.T) {
	for _, q := range []string{QuerySummaryCounts, QueryRecentBatches} {
		t.Run(q, func(t *testing.T) {
			reader := sampleReader()
			reader.fail[q] = errors.New("timeout")
			svc := NewService(reader, nil, nil)

			s, err := svc.Summary(context.Background())
			require.Error(t, err)

			assert.Equal(t, SummaryCounts{}, s.Counts)
			assert.NotNil(t, s.RecentBatches)
			assert.Empty(t, s.RecentBatches)
			assert.Contains(t, s.Warning, "timeout")
		})
	}
}

func TestService_Summary_NilBatchesBecomeEmpty(t *testing.T) {
	reader := sampleReader()
	reader.batches = nil
	svc := NewService(reader, nil, nil)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s.RecentBatches)
}

// -------------------------
// Handlers
// -------------------------

func serve(t *testing.T, reader Reader, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(reader, nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBIDashboardHandler_OK(t *testing.T) {
	rec := serve(t, sampleReader(), "/bi/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"animals_per_owner": [{"owner_name": "Ana", "total_animals": 20}],
		"animals_per_breed": [{"breed_label": "Nelore", "total": 15}, {"breed_label": "Não informado", "total": 5}],
		"area_per_owner": [{"owner_name": "Ana", "total_hectares": 15.5}],
		"farms_per_state": [{"region_label": "MT", "farm_count": 2}]
	}`, rec.Body.String())
}

func TestBIDashboardHandler_Failure(t *testing.T) {
	reader := sampleReader()
	reader.fail[QueryFarmsPerState] = errors.New("store unreachable")

	rec := serve(t, reader, "/bi/dashboard")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "farms_per_state: store unreachable"}`, rec.Body.String())
}

func TestSummaryHandler_FallbackStill200(t *testing.T) {
	reader := sampleReader()
	reader.fail[QuerySummaryCounts] = errors.New("store unreachable")

	rec := serve(t, reader, "/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"owners": 0, "properties": 0, "animal_kinds": 0, "batches": 0,
		"total_animals": 0, "distinct_kinds": 0, "distinct_breeds": 0,
		"recent_batches": [],
		"warning": "could not load dashboard data: summary_counts: store unreachable"
	}`, rec.Body.String())
}
