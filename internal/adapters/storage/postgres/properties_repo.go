package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"progest/internal/domain/properties"
)

type PropertiesRepo struct {
	db *sql.DB
}

func NewPropertiesRepo(db *sql.DB) *PropertiesRepo {
	return &PropertiesRepo{db: db}
}

func (r *PropertiesRepo) Create(ctx context.Context, p properties.Property) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (id, name, municipality, state, area_hectares, owner_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Name,
		p.Municipality,
		p.State,
		p.AreaHectares,
		p.OwnerID,
		p.CreatedAt,
	)
	if err != nil {
		if _, ok := constraintViolation(err, codeForeignKeyViolation); ok {
			return properties.ErrOwnerNotFound
		}
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertiesRepo) List(ctx context.Context) ([]properties.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id, p.name, p.municipality, p.state,
			p.area_hectares, p.owner_id, p.created_at,
			o.name
		FROM properties p
		JOIN owners o ON o.id = p.owner_id
		ORDER BY p.name ASC, p.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := make([]properties.Listing, 0)
	for rows.Next() {
		var l properties.Listing
		var state sql.NullString
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Municipality,
			&state,
			&l.AreaHectares,
			&l.OwnerID,
			&l.CreatedAt,
			&l.OwnerName,
		); err != nil {
			return nil, err
		}
		l.State = state.String
		out = append(out, l)
	}
	return out, rows.Err()
}
