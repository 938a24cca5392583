package artworks

import (
	"encoding/json"
	"errors"
	"net/http"

	"gallery-be/internal/api"
	"gallery-be/internal/artwork"
)

type Handler struct {
	Svc artwork.Service
}

func NewHandler(svc artwork.Service) *Handler {
	return &Handler{Svc: svc}
}

type artworkRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	ImageURLs   []string          `json:"imageUrls"`
	Dimensions  *string           `json:"dimensions"`
	Medium      *string           `json:"medium"`
	Price       *float64          `json:"price"`
	Currency    *artwork.Currency `json:"currency"`
	Available   *bool             `json:"available"`
	Featured    *bool             `json:"featured"`
	Category    *string           `json:"category"`
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// GET /api/artworks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var list []artwork.Artwork
	if r.URL.Query().Get("featured") == "true" {
		list = h.Svc.Featured()
	} else {
		list = h.Svc.List()
	}

	if category := r.URL.Query().Get("category"); category != "" && category != "all" {
		filtered := make([]artwork.Artwork, 0, len(list))
		for _, a := range list {
			if a.Category == category {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	api.JSON(w, http.StatusOK, list)
}

// GET /api/artworks/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	art, ok := h.Svc.GetByID(r.PathValue("id"))
	if !ok {
		api.Error(w, http.StatusNotFound, "artwork not found")
		return
	}
	api.JSON(w, http.StatusOK, art)
}

// POST /api/artworks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req artworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := artwork.NewArtworkInput{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		ImageURLs:   req.ImageURLs,
		Dimensions:  deref(req.Dimensions),
		Medium:      deref(req.Medium),
		Price:       deref(req.Price),
		Currency:    deref(req.Currency),
		Available:   deref(req.Available),
		Featured:    deref(req.Featured),
		Category:    deref(req.Category),
	}

	art, err := h.Svc.Add(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, art)
}

// PUT /api/artworks/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req artworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := artwork.UpdateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Dimensions:  req.Dimensions,
		Medium:      req.Medium,
		Price:       req.Price,
		Currency:    req.Currency,
		Available:   req.Available,
		Featured:    req.Featured,
		Category:    req.Category,
	}

	art, err := h.Svc.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, art)
}

// DELETE /api/artworks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, artwork.ErrArtworkNotFound):
		api.Error(w, http.StatusNotFound, "artwork not found")
	case errors.Is(err, artwork.ErrInvalidInput), errors.Is(err, artwork.ErrNoFieldsToUpdate):
		api.Error(w, http.StatusBadRequest, err.Error())
	default:
		api.Error(w, http.StatusInternalServerError, "storage operation failed")
	}
}
