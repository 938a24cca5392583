package offer

import (
	"time"

	"gallery-be/internal/artwork"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCountered Status = "countered"
)

type Offer struct {
	ID          string           `json:"id"`
	ArtworkID   string           `json:"artworkId"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	OfferAmount float64          `json:"offerAmount"`
	Currency    artwork.Currency `json:"currency"`
	Note        string           `json:"note,omitempty"`
	Status      Status           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// SubmitOfferInput never carries a status: offers are always created
// pending by the backing store's default.
type SubmitOfferInput struct {
	ArtworkID   string
	Name        string
	Email       string
	Phone       string
	OfferAmount float64
	Currency    artwork.Currency
	Note        string
}

// Record is the storage-facing shape of an offer.
type Record struct {
	ID          string    `json:"id"`
	ArtworkID   string    `json:"artwork_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	OfferAmount float64   `json:"offer_amount"`
	Currency    string    `json:"currency"`
	Note        string    `json:"note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func recordFromInput(in SubmitOfferInput) Record {
	currency := in.Currency
	if currency == "" {
		currency = artwork.CurrencyUSD
	}

	return Record{
		ArtworkID:   in.ArtworkID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		OfferAmount: in.OfferAmount,
		Currency:    string(currency),
		Note:        in.Note,
	}
}

func (r Record) toOffer() Offer {
	status := Status(r.Status)
	if status == "" {
		status = StatusPending
	}

	return Offer{
		ID:          r.ID,
		ArtworkID:   r.ArtworkID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		OfferAmount: r.OfferAmount,
		Currency:    artwork.Currency(r.Currency),
		Note:        r.Note,
		Status:      status,
		CreatedAt:   r.CreatedAt,
	}
}
