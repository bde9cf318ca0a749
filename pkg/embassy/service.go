package embassy

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the embassy content library.
// Read operations take the requested locale and return localized views;
// writes persist the base+i18n document as submitted.
type Service interface {
	// Consular services
	CreateService(ctx context.Context, req CreateServiceRequest) (*ConsularService, error)
	GetService(ctx context.Context, id uuid.UUID, lang Locale) (*ConsularService, error)
	ListServices(ctx context.Context, lang Locale) ([]*ConsularService, error)
	UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ConsularService, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	// News
	CreateNews(ctx context.Context, req CreateNewsRequest) (*NewsItem, error)
	GetNews(ctx context.Context, id uuid.UUID, lang Locale) (*NewsItem, error)
	ListNews(ctx context.Context, lang Locale) ([]*NewsItem, error)
	UpdateNews(ctx context.Context, id uuid.UUID, req UpdateNewsRequest) (*NewsItem, error)
	DeleteNews(ctx context.Context, id uuid.UUID) error

	// Alerts
	CreateAlert(ctx context.Context, req CreateAlertRequest) (*Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID, lang Locale) (*Alert, error)
	ListAlerts(ctx context.Context, lang Locale) ([]*Alert, error)
	UpdateAlert(ctx context.Context, id uuid.UUID, req UpdateAlertRequest) (*Alert, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) error

	// Form documents
	CreateForm(ctx context.Context, req CreateFormRequest) (*FormDocument, error)
	GetForm(ctx context.Context, id uuid.UUID, lang Locale) (*FormDocument, error)
	ListForms(ctx context.Context, lang Locale) ([]*FormDocument, error)
	UpdateForm(ctx context.Context, id uuid.UUID, req UpdateFormRequest) (*FormDocument, error)
	DeleteForm(ctx context.Context, id uuid.UUID) error

	// Settings singleton
	GetSettings(ctx context.Context, lang Locale) (*Settings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*Settings, error)

	// Intake
	CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (*Submission, error)
	CreateContact(ctx context.Context, req CreateSubmissionRequest) (*Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListSubmissions(ctx context.Context) ([]*Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status SubmissionStatus) (*Submission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error

	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]*Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

// StorageService defines the attachment upload proxy.
type StorageService interface {
	// Upload streams one file into the blob store under a randomly
	// prefixed, filename-sanitized key and returns its public URL.
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
}
