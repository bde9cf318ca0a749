// Package api exposes the embassy content service over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// envelope is the uniform response shape. Success carries data, failure
// carries a message; never both.
type envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	render.JSON(w, r, envelope{Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, envelope{Error: message})
}

// respondServiceError maps service errors onto HTTP statuses. Unexpected
// errors are logged in full and surfaced as a generic message only.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		respondError(w, r, http.StatusBadRequest, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, embassy.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, embassy.ErrInvalidStatus), errors.Is(err, embassy.ErrInvalidLevel):
		respondError(w, r, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondError(w, r, http.StatusInternalServerError, "internal error")
	}
}
