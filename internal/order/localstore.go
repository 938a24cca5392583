package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
)

const ordersKey = "orders"

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

func (r *localRepository) Create(ctx context.Context, rec Record) (Record, error) {
	var recs []Record
	raw, err := r.db.Get([]byte(ordersKey), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		// first order ever
	case err != nil:
		return Record{}, err
	default:
		if err := json.Unmarshal(raw, &recs); err != nil {
			return Record{}, fmt.Errorf("decode orders blob: %w", err)
		}
	}

	rec.ID = r.newID()
	rec.CreatedAt = r.now().UTC()

	recs = append(recs, rec)
	out, err := json.Marshal(recs)
	if err != nil {
		return Record{}, fmt.Errorf("encode orders blob: %w", err)
	}
	if err := r.db.Put([]byte(ordersKey), out, nil); err != nil {
		return Record{}, err
	}
	return rec, nil
}
