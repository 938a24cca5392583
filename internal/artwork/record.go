package artwork

import "time"

// Record is the storage-facing shape of an artwork. JSON tags follow the
// physical naming shared by both backing stores (snake_case columns in
// postgres, the same field names inside the local blob).
type Record struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
	// LegacyImageURL is the pre-multi-image field. It is recognised on load
	// so the migration chain can upgrade old records; it is never written.
	LegacyImageURL string     `json:"image,omitempty"`
	Dimensions     string     `json:"dimensions"`
	Medium         string     `json:"medium"`
	Price          float64    `json:"price"`
	Currency       string     `json:"currency"`
	Available      bool       `json:"available"`
	Featured       bool       `json:"featured"`
	Category       string     `json:"category"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (r Record) toArtwork() Artwork {
	currency := Currency(r.Currency)
	if currency == "" {
		currency = CurrencyUSD
	}

	images := r.ImageURLs
	if images == nil {
		images = []string{}
	}

	return Artwork{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURLs:   images,
		Dimensions:  r.Dimensions,
		Medium:      r.Medium,
		Price:       r.Price,
		Currency:    currency,
		Available:   r.Available,
		Featured:    r.Featured,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

func recordFromInput(in NewArtworkInput) Record {
	currency := in.Currency
	if currency == "" {
		currency = CurrencyUSD
	}

	return Record{
		Title:       in.Title,
		Description: in.Description,
		ImageURLs:   in.ImageURLs,
		Dimensions:  in.Dimensions,
		Medium:      in.Medium,
		Price:       in.Price,
		Currency:    string(currency),
		Available:   in.Available,
		Featured:    in.Featured,
		Category:    in.Category,
	}
}

// applyUpdate merges the provided fields into the record.
func applyUpdate(r Record, in UpdateArtworkInput) Record {
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.ImageURLs != nil {
		r.ImageURLs = in.ImageURLs
	}
	if in.Dimensions != nil {
		r.Dimensions = *in.Dimensions
	}
	if in.Medium != nil {
		r.Medium = *in.Medium
	}
	if in.Price != nil {
		r.Price = *in.Price
	}
	if in.Currency != nil {
		r.Currency = string(*in.Currency)
	}
	if in.Available != nil {
		r.Available = *in.Available
	}
	if in.Featured != nil {
		r.Featured = *in.Featured
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	return r
}
