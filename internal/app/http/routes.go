package routes

import (
	"net/http"

	adminapi "gallery-be/internal/api/admin"
	"gallery-be/internal/api/artworks"
	"gallery-be/internal/api/inquiries"
	"gallery-be/internal/middleware"
)

type Deps struct {
	Artworks  *artworks.Handler
	Inquiries *inquiries.Handler
	Admin     *adminapi.Handler
	JWTSecret string
}

// RegisterRoutes mounts all API routes onto mux. Admin routes require a
// valid ADMIN token.
func RegisterRoutes(mux *http.ServeMux, d Deps) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /api/artworks", d.Artworks.List)
	mux.HandleFunc("GET /api/artworks/{id}", d.Artworks.Get)

	mux.HandleFunc("POST /api/offers", d.Inquiries.SubmitOffer)
	mux.HandleFunc("POST /api/orders", d.Inquiries.SubmitOrder)

	mux.HandleFunc("POST /api/admin/login", d.Admin.Login)

	adminOnly := func(next http.HandlerFunc) http.Handler {
		return middleware.AdminOnly(d.JWTSecret, next)
	}
	mux.Handle("POST /api/artworks", adminOnly(d.Artworks.Create))
	mux.Handle("PUT /api/artworks/{id}", adminOnly(d.Artworks.Update))
	mux.Handle("DELETE /api/artworks/{id}", adminOnly(d.Artworks.Delete))
	mux.Handle("POST /api/admin/images", adminOnly(d.Admin.UploadImage))
	mux.Handle("DELETE /api/admin/images", adminOnly(d.Admin.DeleteImage))
}
