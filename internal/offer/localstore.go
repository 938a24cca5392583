package offer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
)

const offersKey = "offers"

// localRepository appends offers to a single JSON blob, full read and full
// rewrite per submission.
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
	raw, err := r.db.Get([]byte(offersKey), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		// first offer ever
	case err != nil:
		return Record{}, err
	default:
		if err := json.Unmarshal(raw, &recs); err != nil {
			return Record{}, fmt.Errorf("decode offers blob: %w", err)
		}
	}

	rec.ID = r.newID()
	rec.CreatedAt = r.now().UTC()
	rec.Status = string(StatusPending)

	recs = append(recs, rec)
	out, err := json.Marshal(recs)
	if err != nil {
		return Record{}, fmt.Errorf("encode offers blob: %w", err)
	}
	if err := r.db.Put([]byte(offersKey), out, nil); err != nil {
		return Record{}, err
	}
	return rec, nil
}
