package artwork

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gallery-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Repository is the persistence adapter for the artwork catalog. Two
// implementations exist: the postgres one below and the local durable
// cache in localstore.go. The store selects one at startup; callers never
// branch on the strategy.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, id string, input UpdateArtworkInput) (Record, error)
	Delete(ctx context.Context, id string) error

	// ReplaceAll writes a migrated record set back to storage as one batch.
	ReplaceAll(ctx context.Context, recs []Record) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, image_urls, dimensions, medium,
		       price, currency, available, featured, category, created_at
		FROM artworks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var currency sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Description,
			pq.Array(&rec.ImageURLs),
			&rec.Dimensions,
			&rec.Medium,
			&rec.Price,
			&currency,
			&rec.Available,
			&rec.Featured,
			&rec.Category,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Currency = currency.String
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (r *repository) Create(ctx context.Context, rec Record) (Record, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO artworks (title, description, image_urls, dimensions, medium,
		                      price, currency, available, featured, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		rec.Title,
		rec.Description,
		pq.Array(rec.ImageURLs),
		rec.Dimensions,
		rec.Medium,
		rec.Price,
		rec.Currency,
		rec.Available,
		rec.Featured,
		rec.Category,
	).Scan(&rec.ID, &rec.CreatedAt)

	return rec, err
}

func (r *repository) Update(ctx context.Context, id string, input UpdateArtworkInput) (Record, error) {
	updates := []string{}
	args := []any{}
	argIndex := 1

	addSet := func(column string, value any) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if input.Title != nil {
		addSet("title", *input.Title)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.ImageURLs != nil {
		addSet("image_urls", pq.Array(input.ImageURLs))
	}
	if input.Dimensions != nil {
		addSet("dimensions", *input.Dimensions)
	}
	if input.Medium != nil {
		addSet("medium", *input.Medium)
	}
	if input.Price != nil {
		addSet("price", *input.Price)
	}
	if input.Currency != nil {
		addSet("currency", string(*input.Currency))
	}
	if input.Available != nil {
		addSet("available", *input.Available)
	}
	if input.Featured != nil {
		addSet("featured", *input.Featured)
	}
	if input.Category != nil {
		addSet("category", *input.Category)
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE artworks
		SET %s
		WHERE id = $%d
		RETURNING id, title, description, image_urls, dimensions, medium,
		          price, currency, available, featured, category, created_at
	`, strings.Join(updates, ", "), argIndex)

	var rec Record
	var currency sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		pq.Array(&rec.ImageURLs),
		&rec.Dimensions,
		&rec.Medium,
		&rec.Price,
		&currency,
		&rec.Available,
		&rec.Featured,
		&rec.Category,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrArtworkNotFound
	}
	if err != nil {
		return Record{}, err
	}

	rec.Currency = currency.String
	return rec, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrArtworkNotFound
	}
	return nil
}

func (r *repository) ReplaceAll(ctx context.Context, recs []Record) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ReplaceAll"),
		zap.Int("count", len(recs)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, `
			UPDATE artworks
			SET title = $1, description = $2, image_urls = $3, dimensions = $4,
			    medium = $5, price = $6, currency = $7, available = $8,
			    featured = $9, category = $10, updated_at = NOW()
			WHERE id = $11
		`,
			rec.Title,
			rec.Description,
			pq.Array(rec.ImageURLs),
			rec.Dimensions,
			rec.Medium,
			rec.Price,
			rec.Currency,
			rec.Available,
			rec.Featured,
			rec.Category,
			rec.ID,
		); err != nil {
			log.Error("failed to write back migrated artwork", zap.String("id", rec.ID), zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}
