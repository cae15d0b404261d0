package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"progest/internal/domain/batches"
)

type BatchesRepo struct {
	db *sql.DB
}

func NewBatchesRepo(db *sql.DB) *BatchesRepo {
	return &BatchesRepo{db: db}
}

func (r *BatchesRepo) Create(ctx context.Context, b batches.Batch) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO batches (id, property_id, animal_kind_id, count, registered_on, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		b.ID,
		b.PropertyID,
		b.AnimalKindID,
		b.Count,
		toNullDate(b.RegisteredOn),
		b.CreatedAt,
	)
	if err != nil {
		if name, ok := constraintViolation(err, codeForeignKeyViolation); ok {
			if name == "batches_animal_kind_id_fkey" {
				return batches.ErrAnimalKindNotFound
			}
			return batches.ErrPropertyNotFound
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func (r *BatchesRepo) List(ctx context.Context) ([]batches.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			b.id, b.property_id, b.animal_kind_id, b.count,
			b.registered_on, b.created_at,
			p.name, k.kind, k.breed
		FROM batches b
		JOIN properties p ON p.id = b.property_id
		JOIN animal_kinds k ON k.id = b.animal_kind_id
		ORDER BY p.name ASC, k.kind ASC, b.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	out := make([]batches.Listing, 0)
	for rows.Next() {
		var l batches.Listing
		var on sql.NullTime
		var breed sql.NullString
		if err := rows.Scan(
			&l.ID,
			&l.PropertyID,
			&l.AnimalKindID,
			&l.Count,
			&on,
			&l.CreatedAt,
			&l.PropertyName,
			&l.AnimalKind,
			&breed,
		); err != nil {
			return nil, err
		}
		l.RegisteredOn = fromNullDate(on)
		l.Breed = fromNullString(breed)
		out = append(out, l)
	}
	return out, rows.Err()
}
