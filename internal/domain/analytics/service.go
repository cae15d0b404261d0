package analytics

import (
	"context"
	"fmt"
	"time"

	"progest/internal/platform/logger"
)

// Nombres de consulta: se usan como label de métricas y en los logs.
const (
	QueryAnimalsPerOwner = "animals_per_owner"
	QueryAnimalsPerBreed = "animals_per_breed"
	QueryAreaPerOwner    = "area_per_owner"
	QueryFarmsPerState   = "farms_per_state"
	QuerySummaryCounts   = "summary_counts"
	QueryRecentBatches   = "recent_batches"
)

// Observer recibe la duración y el resultado de cada consulta (métricas).
type Observer func(query string, took time.Duration, err error)

// QueryError identifica qué consulta del bundle falló.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string { return fmt.Sprintf("%s: %v", e.Query, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

type Service struct {
	reader  Reader
	log     logger.Logger
	observe Observer
}

func NewService(reader Reader, log logger.Logger, observe Observer) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if observe == nil {
		observe = func(string, time.Duration, error) {}
	}
	return &Service{
		reader:  reader,
		log:     log,
		observe: observe,
	}
}

// Bundle ejecuta las cuatro consultas BI en orden. Política atómica: la primera
// que falla aborta el bundle y se devuelve un único error.
func (s *Service) Bundle(ctx context.Context) (Bundle, error) {
	var (
		b   Bundle
		err error
	)

	if b.AnimalsPerOwner, err = run(ctx, s, QueryAnimalsPerOwner, s.reader.AnimalsPerOwner); err != nil {
		return Bundle{}, err
	}
	if b.AnimalsPerBreed, err = run(ctx, s, QueryAnimalsPerBreed, s.reader.AnimalsPerBreed); err != nil {
		return Bundle{}, err
	}
	if b.AreaPerOwner, err = run(ctx, s, QueryAreaPerOwner, s.reader.AreaPerOwner); err != nil {
		return Bundle{}, err
	}
	if b.FarmsPerState, err = run(ctx, s, QueryFarmsPerState, s.reader.FarmsPerState); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Summary calcula los contadores y el listado de lotes. Política fail-to-zero:
// si algo falla devuelve todo en cero con un único Warning (y el error, para logs).
// La página que lo consume tiene que renderizar igual.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	counts, err := run(ctx, s, QuerySummaryCounts, s.reader.SummaryCounts)
	if err != nil {
		return s.summaryFallback(err), err
	}

	recent, err := run(ctx, s, QueryRecentBatches, s.reader.RecentBatches)
	if err != nil {
		return s.summaryFallback(err), err
	}
	if recent == nil {
		recent = []BatchLine{}
	}

	return Summary{Counts: counts, RecentBatches: recent}, nil
}

func (s *Service) summaryFallback(err error) Summary {
	s.log.Warn("dashboard summary fell back to zero", map[string]any{"error": err})
	return Summary{
		RecentBatches: []BatchLine{},
		Warning:       "could not load dashboard data: " + err.Error(),
	}
}

func run[T any](ctx context.Context, s *Service, query string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	out, err := fn(ctx)
	took := time.Since(start)

	s.observe(query, took, err)
	if err != nil {
		s.log.Error("analytics query failed", map[string]any{"query": query, "error": err})
		var zero T
		return zero, &QueryError{Query: query, Err: err}
	}

	s.log.Debug("analytics query", map[string]any{"query": query, "took_ms": took.Milliseconds()})
	return out, nil
}
