package embassy

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Repository defines the interface for content persistence. List reads
// return entries sorted by created_at descending; Get returns ErrNotFound
// for missing ids; Delete is idempotent and succeeds for missing ids.
type Repository interface {
	// Consular services
	CreateService(ctx context.Context, s *ConsularService) error
	GetService(ctx context.Context, id uuid.UUID) (*ConsularService, error)
	UpdateService(ctx context.Context, s *ConsularService) error
	DeleteService(ctx context.Context, id uuid.UUID) error
	ListServices(ctx context.Context) ([]*ConsularService, error)

	// News
	CreateNews(ctx context.Context, n *NewsItem) error
	GetNews(ctx context.Context, id uuid.UUID) (*NewsItem, error)
	UpdateNews(ctx context.Context, n *NewsItem) error
	DeleteNews(ctx context.Context, id uuid.UUID) error
	ListNews(ctx context.Context) ([]*NewsItem, error)

	// Alerts
	CreateAlert(ctx context.Context, a *Alert) error
	GetAlert(ctx context.Context, id uuid.UUID) (*Alert, error)
	UpdateAlert(ctx context.Context, a *Alert) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	ListAlerts(ctx context.Context) ([]*Alert, error)

	// Form documents
	CreateForm(ctx context.Context, f *FormDocument) error
	GetForm(ctx context.Context, id uuid.UUID) (*FormDocument, error)
	UpdateForm(ctx context.Context, f *FormDocument) error
	DeleteForm(ctx context.Context, id uuid.UUID) error
	ListForms(ctx context.Context) ([]*FormDocument, error)

	// Settings singleton
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error

	// Intake records
	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	UpdateSubmission(ctx context.Context, s *Submission) error
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
	ListSubmissions(ctx context.Context) ([]*Submission, error)

	CreateAppointment(ctx context.Context, a *Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateAppointment(ctx context.Context, a *Appointment) error
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context) ([]*Appointment, error)
}

// BlobStore defines the interface for attachment storage backends.
type BlobStore interface {
	// Upload stores the reader's bytes under objectKey with the given
	// content type, publicly readable.
	Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error

	// Download returns the stored bytes for objectKey.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the object. Missing keys are not an error.
	Delete(ctx context.Context, objectKey string) error

	// PublicURL returns the publicly reachable URL for objectKey.
	PublicURL(objectKey string) string
}

// Notifier delivers best-effort editor notifications. Implementations
// must not be relied on for correctness: callers log and swallow errors.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}
