package admin

import (
	"encoding/json"
	"net/http"

	"gallery-be/internal/api"
	"gallery-be/internal/auth"
	"gallery-be/internal/config"
	"gallery-be/internal/media"
)

// maxImageSize caps multipart uploads at 10 MiB.
const maxImageSize = 10 << 20

type Handler struct {
	Cfg      *config.Config
	Uploader media.Uploader
}

func NewHandler(cfg *config.Config, uploader media.Uploader) *Handler {
	return &Handler{Cfg: cfg, Uploader: uploader}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != h.Cfg.AdminEmail || !auth.CheckPasswordHash(req.Password, h.Cfg.AdminPasswordHash) {
		api.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateJWT(h.Cfg.JWTSecret, req.Email, auth.RoleAdmin)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	api.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// POST /api/admin/images
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		api.Error(w, http.StatusServiceUnavailable, "image hosting is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		api.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to upload image")
		return
	}

	api.JSON(w, http.StatusCreated, map[string]string{"url": url})
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

// DELETE /api/admin/images
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		api.Error(w, http.StatusServiceUnavailable, "image hosting is not configured")
		return
	}

	var req deleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		api.Error(w, http.StatusBadRequest, "image url is required")
		return
	}

	if err := h.Uploader.Delete(r.Context(), req.URL); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to delete image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
