package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordToArtwork_Defaults(t *testing.T) {
	t.Run("Empty currency falls back to USD", func(t *testing.T) {
		art := Record{ID: "a1", ImageURLs: []string{"u"}}.toArtwork()
		assert.Equal(t, CurrencyUSD, art.Currency)
	})

	t.Run("Nil images become empty slice", func(t *testing.T) {
		art := Record{ID: "a1"}.toArtwork()
		assert.NotNil(t, art.ImageURLs)
		assert.Empty(t, art.ImageURLs)
	})
}

func TestRecordFromInput(t *testing.T) {
	rec := recordFromInput(NewArtworkInput{
		Title:     "X",
		ImageURLs: []string{"u"},
		Price:     100,
		Category:  CategoryAbstract,
		Available: true,
	})

	assert.Equal(t, "X", rec.Title)
	assert.Equal(t, string(CurrencyUSD), rec.Currency)
	assert.Empty(t, rec.ID)
	assert.True(t, rec.CreatedAt.IsZero())
}

func TestApplyUpdate(t *testing.T) {
	base := Record{
		ID:        "a1",
		Title:     "Before",
		ImageURLs: []string{"u"},
		Price:     100,
		Currency:  "USD",
		Available: true,
	}

	title := "After"
	price := 250.0
	updated := applyUpdate(base, UpdateArtworkInput{Title: &title, Price: &price})

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 250.0, updated.Price)

	// Untouched fields carry over.
	assert.Equal(t, base.ID, updated.ID)
	assert.Equal(t, base.ImageURLs, updated.ImageURLs)
	assert.Equal(t, base.Currency, updated.Currency)
	assert.True(t, updated.Available)
}

func TestUpdateArtworkInput_HasChanges(t *testing.T) {
	assert.False(t, UpdateArtworkInput{}.HasChanges())

	featured := true
	assert.True(t, UpdateArtworkInput{Featured: &featured}.HasChanges())
	assert.True(t, UpdateArtworkInput{ImageURLs: []string{"u"}}.HasChanges())
}
