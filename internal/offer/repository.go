package offer

import (
	"context"
	"database/sql"
)

// Repository is the append-only persistence adapter for offers. Offers are
// never updated or deleted here; status transitions belong elsewhere.
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
	// status is deliberately omitted: the column default keeps new offers
	// pending.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO offers (artwork_id, name, email, phone, offer_amount, currency, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at
	`,
		rec.ArtworkID,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.OfferAmount,
		rec.Currency,
		rec.Note,
	).Scan(&rec.ID, &rec.Status, &rec.CreatedAt)

	return rec, err
}
