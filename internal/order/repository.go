package order

import (
	"context"
	"database/sql"
)

// Repository is the append-only persistence adapter for orders.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec Record) (Record, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (artwork_id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		rec.ArtworkID,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.Message,
	).Scan(&rec.ID, &rec.CreatedAt)

	return rec, err
}
