package api

import (
	"encoding/json"
	"net/http"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// SettingsHandler handles the sitewide settings singleton
type SettingsHandler struct {
	service embassy.Service
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service embassy.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context(), queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req embassy.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	settings, err := h.service.UpdateSettings(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, settings)
}
