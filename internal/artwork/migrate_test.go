package artwork

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMigrateRecord_LegacySingleImage(t *testing.T) {
	created := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	legacy := Record{
		ID:             "a1",
		Title:          "Old Piece",
		LegacyImageURL: "https://img.example.com/u.jpg",
		Price:          100,
		Currency:       "USD",
		Category:       CategoryAbstract,
		CreatedAt:      created,
	}

	migrated, changed := migrateRecord(legacy)

	assert.True(t, changed)
	assert.Equal(t, []string{"https://img.example.com/u.jpg"}, migrated.ImageURLs)
	assert.Empty(t, migrated.LegacyImageURL)

	// Nothing else may be altered.
	assert.Equal(t, "a1", migrated.ID)
	assert.Equal(t, "Old Piece", migrated.Title)
	assert.Equal(t, 100.0, migrated.Price)
	assert.Equal(t, "USD", migrated.Currency)
	assert.Equal(t, CategoryAbstract, migrated.Category)
	assert.Equal(t, created, migrated.CreatedAt)
}

func TestMigrateRecord_Idempotent(t *testing.T) {
	records := []Record{
		{ID: "a1", LegacyImageURL: "https://img.example.com/u.jpg"},
		{ID: "a2", ImageURLs: []string{"https://img.example.com/v.jpg"}},
		{ID: "a3", ImageURLs: []string{"x"}, LegacyImageURL: "y"},
	}

	for _, rec := range records {
		once, _ := migrateRecord(rec)
		twice, changedAgain := migrateRecord(once)

		assert.Equal(t, once, twice)
		assert.False(t, changedAgain)
	}
}

func TestMigrateRecord_CurrentShapeUnchanged(t *testing.T) {
	current := Record{
		ID:        "a1",
		ImageURLs: []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
	}

	migrated, changed := migrateRecord(current)

	assert.False(t, changed)
	assert.Equal(t, current, migrated)
}

func TestValidateRecord(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validateRecord(Record{ID: "a1", ImageURLs: []string{"u"}}))
	})

	t.Run("Missing id", func(t *testing.T) {
		assert.Error(t, validateRecord(Record{ImageURLs: []string{"u"}}))
	})

	t.Run("No images in any recognised shape", func(t *testing.T) {
		assert.Error(t, validateRecord(Record{ID: "a1"}))
	})
}
