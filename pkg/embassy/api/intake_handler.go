package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// IntakeHandler handles visitor submissions, contact messages and
// appointment requests plus the editor views over them.
type IntakeHandler struct {
	service embassy.Service
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(service embassy.Service) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// PublicRoutes returns the unauthenticated intake routes
func (h *IntakeHandler) PublicRoutes(r chi.Router) {
	r.Post("/submissions", h.CreateSubmission)
	r.Post("/contact", h.CreateContact)
	r.Post("/appointments", h.CreateAppointment)
}

// EditorRoutes returns the authenticated intake management routes
func (h *IntakeHandler) EditorRoutes(r chi.Router) {
	r.Get("/submissions", h.ListSubmissions)
	r.Get("/submissions/{id}", h.GetSubmission)
	r.Patch("/submissions/{id}", h.UpdateSubmissionStatus)
	r.Delete("/submissions/{id}", h.DeleteSubmission)

	r.Get("/appointments", h.ListAppointments)
	r.Get("/appointments/{id}", h.GetAppointment)
	r.Patch("/appointments/{id}", h.UpdateAppointmentStatus)
	r.Delete("/appointments/{id}", h.DeleteAppointment)
}

// statusPatch is the PATCH body for intake status updates
type statusPatch struct {
	Status string `json:"status"`
}

// Submissions

func (h *IntakeHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateSubmission(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *IntakeHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateContact(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *IntakeHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListSubmissions(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *IntakeHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetSubmission(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *IntakeHandler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch statusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateSubmissionStatus(r.Context(), id, embassy.SubmissionStatus(patch.Status))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *IntakeHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteSubmission(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// Appointments

func (h *IntakeHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req embassy.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.CreateAppointment(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, entry)
}

func (h *IntakeHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListAppointments(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

func (h *IntakeHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.GetAppointment(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *IntakeHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch statusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdateAppointmentStatus(r.Context(), id, embassy.AppointmentStatus(patch.Status))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entry)
}

func (h *IntakeHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteAppointment(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
