package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// ContentHandler handles HTTP requests for the four content collections
type ContentHandler struct {
	service embassy.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service embassy.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// PublicRoutes returns the unauthenticated read routes
func (h *ContentHandler) PublicRoutes(r chi.Router) {
	r.Get("/consular-services", h.ListServices)
	r.Get("/consular-services/{id}", h.GetService)
	r.Get("/news", h.ListNews)
	r.Get("/news/{id}", h.GetNews)
	r.Get("/alerts", h.ListAlerts)
	r.Get("/alerts/{id}", h.GetAlert)
	r.Get("/forms", h.ListForms)
	r.Get("/forms/{id}", h.GetForm)
}

// EditorRoutes returns the authenticated mutation routes
func (h *ContentHandler) EditorRoutes(r chi.Router) {
	r.Post("/consular-services", h.CreateService)
	r.Put("/consular-services/{id}", h.UpdateService)
	r.Delete("/consular-services/{id}", h.DeleteService)
	r.Post("/news", h.CreateNews)
	r.Put("/news/{id}", h.UpdateNews)
	r.Delete("/news/{id}", h.DeleteNews)
	r.Post("/alerts", h.CreateAlert)
	r.Put("/alerts/{id}", h.UpdateAlert)
	r.Delete("/alerts/{id}", h.DeleteAlert)
	r.Post("/forms", h.CreateForm)
	r.Put("/forms/{id}", h.UpdateForm)
	r.Delete("/forms/{id}", h.DeleteForm)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func queryLang(r *http.Request) embassy.Locale {
	return embassy.ParseLocale(r.URL.Query().Get("lang"))
}

// Consular services

func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListServices(r.Context(), queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *ContentHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetService(r.Context(), id, queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateService(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *ContentHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req embassy.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateService(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteService(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// News

func (h *ContentHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListNews(r.Context(), queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *ContentHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetNews(r.Context(), id, queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateNews(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *ContentHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req embassy.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateNews(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteNews(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Alerts

func (h *ContentHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	// Inactive alerts are included; clients filter on the active flag.
	entries, err := h.service.ListAlerts(r.Context(), queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *ContentHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetAlert(r.Context(), id, queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateAlert(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *ContentHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req embassy.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateAlert(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteAlert(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Form documents

func (h *ContentHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListForms(r.Context(), queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *ContentHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetForm(r.Context(), id, queryLang(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateForm(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *ContentHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req embassy.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateForm(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *ContentHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteForm(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
