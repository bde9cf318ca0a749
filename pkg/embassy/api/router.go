package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// NewRouter assembles the full API surface: public reads and intake,
// auth endpoints, and the editor group behind RequireEditor.
func NewRouter(service embassy.Service, storage embassy.StorageService, auth *Auth, maxUploadBytes int64) chi.Router {
	r := chi.NewRouter()

	for _, mw := range auth.Middleware() {
		r.Use(mw)
	}

	content := NewContentHandler(service)
	settings := NewSettingsHandler(service)
	intake := NewIntakeHandler(service)
	upload := NewUploadHandler(storage, maxUploadBytes)

	// Public surface
	content.PublicRoutes(r)
	intake.PublicRoutes(r)
	r.Get("/settings", settings.GetSettings)

	// Auth
	r.Post("/login", auth.Login)
	r.Post("/logout", auth.Logout)
	r.Get("/me", auth.Me)

	// Editor surface
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireEditor)
		content.EditorRoutes(r)
		intake.EditorRoutes(r)
		r.Put("/settings", settings.UpdateSettings)
		r.Post("/upload", upload.Upload)
	})

	return r
}
