package order

import "time"

// Order is a purchase inquiry for one artwork. Orders are append-only:
// nothing in this service ever mutates or deletes one.
type Order struct {
	ID        string    `json:"id"`
	ArtworkID string    `json:"artworkId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubmitOrderInput struct {
	ArtworkID string
	Name      string
	Email     string
	Phone     string
	Message   string
}

// Record is the storage-facing shape of an order.
type Record struct {
	ID        string    `json:"id"`
	ArtworkID string    `json:"artwork_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func recordFromInput(in SubmitOrderInput) Record {
	return Record{
		ArtworkID: in.ArtworkID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
	}
}

func (r Record) toOrder() Order {
	return Order{
		ID:        r.ID,
		ArtworkID: r.ArtworkID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
