package artwork

import "time"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyNGN Currency = "NGN"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyNGN:
		return true
	}
	return false
}

// Categories understood by the gallery filter.
const (
	CategoryLandscape = "landscape"
	CategoryPortrait  = "portrait"
	CategoryAbstract  = "abstract"
	CategoryStillLife = "still-life"
)

func Categories() []string {
	return []string{CategoryLandscape, CategoryPortrait, CategoryAbstract, CategoryStillLife}
}

type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"imageUrls"`
	Dimensions  string    `json:"dimensions"`
	Medium      string    `json:"medium"`
	Price       float64   `json:"price"`
	Currency    Currency  `json:"currency"`
	Available   bool      `json:"available"`
	Featured    bool      `json:"featured"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewArtworkInput carries every caller-settable field. ID and CreatedAt
// are assigned by the backing store on insert.
type NewArtworkInput struct {
	Title       string
	Description string
	ImageURLs   []string
	Dimensions  string
	Medium      string
	Price       float64
	Currency    Currency
	Available   bool
	Featured    bool
	Category    string
}

// UpdateArtworkInput is a partial update: nil fields are left unchanged.
type UpdateArtworkInput struct {
	Title       *string
	Description *string
	ImageURLs   []string
	Dimensions  *string
	Medium      *string
	Price       *float64
	Currency    *Currency
	Available   *bool
	Featured    *bool
	Category    *string
}

func (in UpdateArtworkInput) HasChanges() bool {
	return in.Title != nil ||
		in.Description != nil ||
		in.ImageURLs != nil ||
		in.Dimensions != nil ||
		in.Medium != nil ||
		in.Price != nil ||
		in.Currency != nil ||
		in.Available != nil ||
		in.Featured != nil ||
		in.Category != nil
}
