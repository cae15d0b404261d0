package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"progest/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, tax_id, email, phone, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		o.ID,
		o.Name,
		o.TaxID,
		o.Email,
		o.Phone,
		o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.ErrDuplicate
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, tax_id, email, phone, created_at
		FROM owners
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.TaxID, &o.Email, &o.Phone, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
