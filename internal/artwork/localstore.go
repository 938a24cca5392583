package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
)

// artworksKey is the well-known key the whole catalog blob lives under.
const artworksKey = "artworks"

// localRepository keeps the catalog as a single JSON blob in a leveldb
// database: every mutation reads the full list, changes it in memory and
// rewrites the whole blob. There are no partial writes at this layer.
type localRepository struct {
	db    *leveldb.DB
	now   func() time.Time
	newID func() string
}

func NewLocalRepository(db *leveldb.DB) Repository {
	return &localRepository{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (r *localRepository) load() ([]Record, error) {
	raw, err := r.db.Get([]byte(artworksKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var recs []Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decode artworks blob: %w", err)
	}
	return recs, nil
}

func (r *localRepository) store(recs []Record) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode artworks blob: %w", err)
	}
	return r.db.Put([]byte(artworksKey), raw, nil)
}

func (r *localRepository) List(ctx context.Context) ([]Record, error) {
	return r.load()
}

func (r *localRepository) Create(ctx context.Context, rec Record) (Record, error) {
	recs, err := r.load()
	if err != nil {
		return Record{}, err
	}

	rec.ID = r.newID()
	rec.CreatedAt = r.now().UTC()
	if rec.Currency == "" {
		rec.Currency = string(CurrencyUSD)
	}

	// Newest first, matching the relational strategy's query order.
	recs = append([]Record{rec}, recs...)
	if err := r.store(recs); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *localRepository) Update(ctx context.Context, id string, input UpdateArtworkInput) (Record, error) {
	recs, err := r.load()
	if err != nil {
		return Record{}, err
	}

	for i, rec := range recs {
		if rec.ID != id {
			continue
		}

		updated := applyUpdate(rec, input)
		now := r.now().UTC()
		updated.UpdatedAt = &now
		recs[i] = updated

		if err := r.store(recs); err != nil {
			return Record{}, err
		}
		return updated, nil
	}

	return Record{}, ErrArtworkNotFound
}

func (r *localRepository) Delete(ctx context.Context, id string) error {
	recs, err := r.load()
	if err != nil {
		return err
	}

	kept := recs[:0]
	found := false
	for _, rec := range recs {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}

	if !found {
		return ErrArtworkNotFound
	}
	return r.store(kept)
}

func (r *localRepository) ReplaceAll(ctx context.Context, recs []Record) error {
	return r.store(recs)
}
