package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"progest/internal/domain/analytics"
)

// AnalyticsReader ejecuta las consultas agregadas del dashboard.
// Raza y estado vacíos se agrupan con NULL vía NULLIF(TRIM(...), '').
type AnalyticsReader struct {
	db *sql.DB
}

func NewAnalyticsReader(db *sql.DB) *AnalyticsReader {
	return &AnalyticsReader{db: db}
}

var _ analytics.Reader = (*AnalyticsReader)(nil)

const (
	sqlAnimalsPerOwner = `
		SELECT o.id, o.name, COALESCE(SUM(b.count), 0) AS total
		FROM owners o
		JOIN properties p ON p.owner_id = o.id
		JOIN batches b ON b.property_id = p.id
		GROUP BY o.id, o.name
		ORDER BY total DESC, o.name ASC, o.id ASC`

	sqlAnimalsPerBreed = `
		SELECT NULLIF(TRIM(k.breed), '') AS breed, COALESCE(SUM(b.count), 0) AS total
		FROM animal_kinds k
		JOIN batches b ON b.animal_kind_id = k.id
		GROUP BY 1
		ORDER BY 2 DESC, 1 ASC NULLS LAST`

	sqlAreaPerOwner = `
		SELECT o.id, o.name, COALESCE(SUM(p.area_hectares), 0) AS total
		FROM owners o
		JOIN properties p ON p.owner_id = o.id
		GROUP BY o.id, o.name
		ORDER BY total DESC, o.name ASC, o.id ASC`

	sqlFarmsPerState = `
		SELECT NULLIF(TRIM(p.state), '') AS state, COUNT(p.id) AS farms
		FROM properties p
		GROUP BY 1
		ORDER BY 2 DESC, 1 ASC NULLS LAST`

	sqlSummaryCounts = `
		SELECT
			(SELECT COUNT(*) FROM owners),
			(SELECT COUNT(*) FROM properties),
			(SELECT COUNT(*) FROM animal_kinds),
			(SELECT COUNT(*) FROM batches),
			(SELECT COALESCE(SUM(count), 0) FROM batches),
			(SELECT COUNT(DISTINCT kind) FROM animal_kinds),
			(SELECT COUNT(DISTINCT NULLIF(TRIM(breed), '')) FROM animal_kinds)`

	sqlRecentBatches = `
		SELECT b.id, p.name, k.kind, NULLIF(TRIM(k.breed), ''), b.count, b.registered_on
		FROM batches b
		JOIN properties p ON p.id = b.property_id
		JOIN animal_kinds k ON k.id = b.animal_kind_id
		ORDER BY b.registered_on DESC NULLS LAST, b.created_at DESC`
)

func (r *AnalyticsReader) AnimalsPerOwner(ctx context.Context) ([]analytics.OwnerAnimals, error) {
	rows, err := r.db.QueryContext(ctx, sqlAnimalsPerOwner)
	if err != nil {
		return nil, fmt.Errorf("animals per owner: %w", err)
	}
	defer rows.Close()

	out := make([]analytics.OwnerAnimals, 0)
	for rows.Next() {
		var row analytics.OwnerAnimals
		if err := rows.Scan(&row.OwnerID, &row.OwnerName, &row.TotalAnimals); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *AnalyticsReader) AnimalsPerBreed(ctx context.Context) ([]analytics.BreedAnimals, error) {
	rows, err := r.db.QueryContext(ctx, sqlAnimalsPerBreed)
	if err != nil {
		return nil, fmt.Errorf("animals per breed: %w", err)
	}
	defer rows.Close()

	out := make([]analytics.BreedAnimals, 0)
	for rows.Next() {
		var row analytics.BreedAnimals
		var breed sql.NullString
		if err := rows.Scan(&breed, &row.Total); err != nil {
			return nil, err
		}
		row.Breed = fromNullString(breed)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *AnalyticsReader) AreaPerOwner(ctx context.Context) ([]analytics.OwnerArea, error) {
	rows, err := r.db.QueryContext(ctx, sqlAreaPerOwner)
	if err != nil {
		return nil, fmt.Errorf("area per owner: %w", err)
	}
	defer rows.Close()

	out := make([]analytics.OwnerArea, 0)
	for rows.Next() {
		var row analytics.OwnerArea
		// NUMERIC entra directo en decimal.Decimal (implementa sql.Scanner)
		if err := rows.Scan(&row.OwnerID, &row.OwnerName, &row.TotalHectares); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *AnalyticsReader) FarmsPerState(ctx context.Context) ([]analytics.StateFarms, error) {
	rows, err := r.db.QueryContext(ctx, sqlFarmsPerState)
	if err != nil {
		return nil, fmt.Errorf("farms per state: %w", err)
	}
	defer rows.Close()

	out := make([]analytics.StateFarms, 0)
	for rows.Next() {
		var row analytics.StateFarms
		var state sql.NullString
		if err := rows.Scan(&state, &row.FarmCount); err != nil {
			return nil, err
		}
		row.State = fromNullString(state)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *AnalyticsReader) SummaryCounts(ctx context.Context) (analytics.SummaryCounts, error) {
	var c analytics.SummaryCounts
	err := r.db.QueryRowContext(ctx, sqlSummaryCounts).Scan(
		&c.Owners,
		&c.Properties,
		&c.AnimalKinds,
		&c.Batches,
		&c.TotalAnimals,
		&c.DistinctKinds,
		&c.DistinctBreeds,
	)
	if err != nil {
		return analytics.SummaryCounts{}, fmt.Errorf("summary counts: %w", err)
	}
	return c, nil
}

func (r *AnalyticsReader) RecentBatches(ctx context.Context) ([]analytics.BatchLine, error) {
	rows, err := r.db.QueryContext(ctx, sqlRecentBatches)
	if err != nil {
		return nil, fmt.Errorf("recent batches: %w", err)
	}
	defer rows.Close()

	out := make([]analytics.BatchLine, 0)
	for rows.Next() {
		var l analytics.BatchLine
		var breed sql.NullString
		var on sql.NullTime
		if err := rows.Scan(&l.BatchID, &l.PropertyName, &l.AnimalKind, &breed, &l.Count, &on); err != nil {
			return nil, err
		}
		l.Breed = fromNullString(breed)
		l.RegisteredOn = fromNullDate(on)
		out = append(out, l)
	}
	return out, rows.Err()
}
