package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"progest/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, k animals.Kind) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animal_kinds (id, kind, breed, created_at)
		VALUES ($1,$2,$3,$4)
	`, k.ID, k.Kind, toNullString(k.Breed), k.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert animal kind: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Kind, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, breed, created_at
		FROM animal_kinds
		ORDER BY kind ASC, breed ASC NULLS FIRST
	`)
	if err != nil {
		return nil, fmt.Errorf("list animal kinds: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Kind, 0)
	for rows.Next() {
		var k animals.Kind
		var breed sql.NullString
		if err := rows.Scan(&k.ID, &k.Kind, &breed, &k.CreatedAt); err != nil {
			return nil, err
		}
		k.Breed = fromNullString(breed)
		out = append(out, k)
	}
	return out, rows.Err()
}
