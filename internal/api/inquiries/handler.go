package inquiries

import (
	"encoding/json"
	"errors"
	"net/http"

	"gallery-be/internal/api"
	"gallery-be/internal/artwork"
	"gallery-be/internal/offer"
	"gallery-be/internal/order"
)

type Handler struct {
	Offers offer.Service
	Orders order.Service
}

func NewHandler(offers offer.Service, orders order.Service) *Handler {
	return &Handler{Offers: offers, Orders: orders}
}

type offerRequest struct {
	ArtworkID   string           `json:"artworkId"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	OfferAmount float64          `json:"offerAmount"`
	Currency    artwork.Currency `json:"currency"`
	Note        string           `json:"note"`
}

type orderRequest struct {
	ArtworkID string `json:"artworkId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// POST /api/offers
func (h *Handler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submitted, err := h.Offers.Submit(r.Context(), offer.SubmitOfferInput{
		ArtworkID:   req.ArtworkID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		OfferAmount: req.OfferAmount,
		Currency:    req.Currency,
		Note:        req.Note,
	})
	if err != nil {
		if errors.Is(err, offer.ErrInvalidInput) {
			api.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to submit offer")
		return
	}

	api.JSON(w, http.StatusCreated, submitted)
}

// POST /api/orders
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submitted, err := h.Orders.Submit(r.Context(), order.SubmitOrderInput{
		ArtworkID: req.ArtworkID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, order.ErrInvalidInput) {
			api.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to submit order")
		return
	}

	api.JSON(w, http.StatusCreated, submitted)
}
