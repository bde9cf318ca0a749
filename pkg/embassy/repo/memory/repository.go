// Package memory provides an in-memory repository, used for tests and
// single-process deployments without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// Repository implements embassy.Repository using in-memory storage
type Repository struct {
	mu           sync.RWMutex
	services     map[uuid.UUID]*embassy.ConsularService
	news         map[uuid.UUID]*embassy.NewsItem
	alerts       map[uuid.UUID]*embassy.Alert
	forms        map[uuid.UUID]*embassy.FormDocument
	submissions  map[uuid.UUID]*embassy.Submission
	appointments map[uuid.UUID]*embassy.Appointment
	settings     *embassy.Settings
}

// New creates a new in-memory repository
func New() embassy.Repository {
	return &Repository{
		services:     make(map[uuid.UUID]*embassy.ConsularService),
		news:         make(map[uuid.UUID]*embassy.NewsItem),
		alerts:       make(map[uuid.UUID]*embassy.Alert),
		forms:        make(map[uuid.UUID]*embassy.FormDocument),
		submissions:  make(map[uuid.UUID]*embassy.Submission),
		appointments: make(map[uuid.UUID]*embassy.Appointment),
	}
}

// Consular services

func (r *Repository) CreateService(ctx context.Context, s *embassy.ConsularService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	entryCopy := *s
	r.services[s.ID] = &entryCopy

	return nil
}

func (r *Repository) GetService(ctx context.Context, id uuid.UUID) (*embassy.ConsularService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.services[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateService(ctx context.Context, s *embassy.ConsularService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[s.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *s
	r.services[s.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteService(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.services, id)
	return nil
}

func (r *Repository) ListServices(ctx context.Context) ([]*embassy.ConsularService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.ConsularService, 0, len(r.services))
	for _, entry := range r.services {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	// Sort by created_at descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// News

func (r *Repository) CreateNews(ctx context.Context, n *embassy.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *n
	r.news[n.ID] = &entryCopy

	return nil
}

func (r *Repository) GetNews(ctx context.Context, id uuid.UUID) (*embassy.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.news[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateNews(ctx context.Context, n *embassy.NewsItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.news[n.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *n
	r.news[n.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.news, id)
	return nil
}

func (r *Repository) ListNews(ctx context.Context) ([]*embassy.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.NewsItem, 0, len(r.news))
	for _, entry := range r.news {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Alerts

func (r *Repository) CreateAlert(ctx context.Context, a *embassy.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *a
	r.alerts[a.ID] = &entryCopy

	return nil
}

func (r *Repository) GetAlert(ctx context.Context, id uuid.UUID) (*embassy.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.alerts[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateAlert(ctx context.Context, a *embassy.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[a.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *a
	r.alerts[a.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.alerts, id)
	return nil
}

func (r *Repository) ListAlerts(ctx context.Context) ([]*embassy.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.Alert, 0, len(r.alerts))
	for _, entry := range r.alerts {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Form documents

func (r *Repository) CreateForm(ctx context.Context, f *embassy.FormDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *f
	r.forms[f.ID] = &entryCopy

	return nil
}

func (r *Repository) GetForm(ctx context.Context, id uuid.UUID) (*embassy.FormDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.forms[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateForm(ctx context.Context, f *embassy.FormDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.forms[f.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *f
	r.forms[f.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteForm(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.forms, id)
	return nil
}

func (r *Repository) ListForms(ctx context.Context) ([]*embassy.FormDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.FormDocument, 0, len(r.forms))
	for _, entry := range r.forms {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Settings singleton

func (r *Repository) GetSettings(ctx context.Context) (*embassy.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, embassy.ErrNotFound
	}

	settingsCopy := *r.settings
	return &settingsCopy, nil
}

func (r *Repository) SaveSettings(ctx context.Context, s *embassy.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settingsCopy := *s
	r.settings = &settingsCopy

	return nil
}

// Submissions

func (r *Repository) CreateSubmission(ctx context.Context, s *embassy.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *s
	r.submissions[s.ID] = &entryCopy

	return nil
}

func (r *Repository) GetSubmission(ctx context.Context, id uuid.UUID) (*embassy.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.submissions[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateSubmission(ctx context.Context, s *embassy.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.submissions[s.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *s
	r.submissions[s.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.submissions, id)
	return nil
}

func (r *Repository) ListSubmissions(ctx context.Context) ([]*embassy.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.Submission, 0, len(r.submissions))
	for _, entry := range r.submissions {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Appointments

func (r *Repository) CreateAppointment(ctx context.Context, a *embassy.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *a
	r.appointments[a.ID] = &entryCopy

	return nil
}

func (r *Repository) GetAppointment(ctx context.Context, id uuid.UUID) (*embassy.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.appointments[id]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *Repository) UpdateAppointment(ctx context.Context, a *embassy.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[a.ID]; !exists {
		return embassy.ErrNotFound
	}

	entryCopy := *a
	r.appointments[a.ID] = &entryCopy

	return nil
}

func (r *Repository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.appointments, id)
	return nil
}

func (r *Repository) ListAppointments(ctx context.Context) ([]*embassy.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*embassy.Appointment, 0, len(r.appointments))
	for _, entry := range r.appointments {
		entryCopy := *entry
		result = append(result, &entryCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
