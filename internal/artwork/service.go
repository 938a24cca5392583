package artwork

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gallery-be/internal/logger"
	"gallery-be/internal/metrics"

	"go.uber.org/zap"
)

// Service is the catalog store: it owns the in-memory artwork list and
// keeps it consistent with the backing store. Reads never touch storage;
// mutations update the list only after the repository confirms them.
type Service interface {
	// Load pulls the catalog from the backing store, migrating old record
	// shapes and seeding the sample set on a completely empty store.
	Load(ctx context.Context) error

	List() []Artwork
	GetByID(id string) (Artwork, bool)
	Featured() []Artwork

	Add(ctx context.Context, input NewArtworkInput) (Artwork, error)
	Update(ctx context.Context, id string, input UpdateArtworkInput) (Artwork, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository

	mu       sync.RWMutex
	artworks []Artwork

	adds     metrics.Counter
	updates  metrics.Counter
	deletes  metrics.Counter
	failures metrics.Counter
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Load(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Load"),
	)
	timer := metrics.StartTimer()

	recs, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to load catalog", zap.Error(err))
		return fmt.Errorf("load catalog: %w", err)
	}

	if len(recs) == 0 {
		return s.seed(ctx, log)
	}

	loaded := make([]Record, 0, len(recs))
	writeback := make([]Record, 0, len(recs))
	anyMigrated := false
	skipped := 0

	for _, rec := range recs {
		migrated, changed := migrateRecord(rec)
		if err := validateRecord(migrated); err != nil {
			// One corrupt record must not take the whole catalog down.
			// It stays out of the in-memory list but goes back to storage
			// as-is: skipped never means deleted.
			log.Warn("skipping unrecognised stored artwork", zap.Error(err))
			skipped++
			writeback = append(writeback, rec)
			continue
		}
		anyMigrated = anyMigrated || changed
		loaded = append(loaded, migrated)
		writeback = append(writeback, migrated)
	}

	var writebackErr error
	if anyMigrated {
		// One batch write-back so the next load sees current-shape records.
		if err := s.repo.ReplaceAll(ctx, writeback); err != nil {
			// The loaded catalog still serves; the chain is idempotent, so
			// the next load redoes the write-back.
			log.Error("failed to write back migrated catalog", zap.Error(err))
			writebackErr = fmt.Errorf("write back migrated catalog: %w", err)
		}
	}

	artworks := recordsToArtworks(loaded)
	sortNewestFirst(artworks)

	s.mu.Lock()
	s.artworks = artworks
	s.mu.Unlock()

	log.Info("catalog loaded",
		zap.Int("count", len(artworks)),
		zap.Int("skipped", skipped),
		zap.Bool("migrated", anyMigrated),
		zap.Duration("duration", timer.Duration()),
	)
	return writebackErr
}

func (s *service) seed(ctx context.Context, log *zap.Logger) error {
	seeded := make([]Artwork, 0, len(seedArtworks))
	for _, input := range seedArtworks {
		rec, err := s.repo.Create(ctx, recordFromInput(input))
		if err != nil {
			log.Error("failed to persist seed artwork", zap.String("title", input.Title), zap.Error(err))
			return fmt.Errorf("seed catalog: %w", err)
		}
		seeded = append(seeded, rec.toArtwork())
	}

	sortNewestFirst(seeded)

	s.mu.Lock()
	s.artworks = seeded
	s.mu.Unlock()

	log.Info("seeded empty catalog", zap.Int("count", len(seeded)))
	return nil
}

func (s *service) List() []Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Artwork, len(s.artworks))
	copy(out, s.artworks)
	return out
}

func (s *service) GetByID(id string) (Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.artworks {
		if a.ID == id {
			return a, true
		}
	}
	return Artwork{}, false
}

func (s *service) Featured() []Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Artwork
	for _, a := range s.artworks {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}

func (s *service) Add(ctx context.Context, input NewArtworkInput) (Artwork, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
	)

	if err := validateNewInput(input); err != nil {
		return Artwork{}, err
	}

	rec, err := s.repo.Create(ctx, recordFromInput(input))
	if err != nil {
		// The in-memory list stays untouched: no phantom artworks on a
		// failed write.
		s.failures.Inc()
		log.Error("failed to add artwork",
			zap.String("title", input.Title),
			zap.Uint64("total_failures", s.failures.Load()),
			zap.Error(err))
		return Artwork{}, fmt.Errorf("add artwork: %w", err)
	}

	art := rec.toArtwork()

	s.mu.Lock()
	s.artworks = append([]Artwork{art}, s.artworks...)
	s.mu.Unlock()

	s.adds.Inc()
	log.Info("artwork added",
		zap.String("id", art.ID),
		zap.String("title", art.Title),
		zap.String("price", FormatPrice(art.Price, art.Currency)),
		zap.Uint64("total_adds", s.adds.Load()),
	)
	return art, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateArtworkInput) (Artwork, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.String("id", id),
	)

	if id == "" {
		return Artwork{}, fmt.Errorf("%w: artwork id is required", ErrInvalidInput)
	}
	if !input.HasChanges() {
		return Artwork{}, ErrNoFieldsToUpdate
	}
	if input.Title != nil && *input.Title == "" {
		return Artwork{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if input.Price != nil && *input.Price < 0 {
		return Artwork{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if input.Currency != nil && !input.Currency.Valid() {
		return Artwork{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, *input.Currency)
	}
	if input.ImageURLs != nil && len(input.ImageURLs) == 0 {
		return Artwork{}, fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}

	// Even for an id we do not hold, the persistence call is attempted and
	// the adapter's verdict reported.
	rec, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.failures.Inc()
		log.Error("failed to update artwork",
			zap.Uint64("total_failures", s.failures.Load()),
			zap.Error(err))
		return Artwork{}, err
	}

	art := rec.toArtwork()

	s.mu.Lock()
	for i, a := range s.artworks {
		if a.ID == id {
			s.artworks[i] = art
			break
		}
	}
	s.mu.Unlock()

	s.updates.Inc()
	log.Info("artwork updated", zap.Uint64("total_updates", s.updates.Load()))
	return art, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.String("id", id),
	)

	if id == "" {
		return fmt.Errorf("%w: artwork id is required", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.failures.Inc()
		log.Error("failed to delete artwork",
			zap.Uint64("total_failures", s.failures.Load()),
			zap.Error(err))
		return err
	}

	s.mu.Lock()
	kept := s.artworks[:0]
	for _, a := range s.artworks {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.artworks = kept
	s.mu.Unlock()

	s.deletes.Inc()
	log.Info("artwork deleted", zap.Uint64("total_deletes", s.deletes.Load()))
	return nil
}

func validateNewInput(input NewArtworkInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(input.ImageURLs) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if input.Currency != "" && !input.Currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, input.Currency)
	}
	return nil
}

func recordsToArtworks(recs []Record) []Artwork {
	out := make([]Artwork, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toArtwork())
	}
	return out
}

func sortNewestFirst(artworks []Artwork) {
	sort.SliceStable(artworks, func(i, j int) bool {
		return artworks[i].CreatedAt.After(artworks[j].CreatedAt)
	})
}
