package embassy

import (
	"time"

	"github.com/google/uuid"
)

// Locale identifies one of the languages the site is published in.
type Locale string

// Supported locales (closed set).
const (
	LocaleEnglish  Locale = "en"
	LocaleRomanian Locale = "ro"
	LocaleArabic   Locale = "ar"
)

// SupportedLocales lists every locale content may be translated into.
var SupportedLocales = []Locale{LocaleEnglish, LocaleRomanian, LocaleArabic}

// AttachmentType classifies an uploaded attachment for display purposes.
type AttachmentType string

// Attachment type constants (typed).
const (
	AttachmentImage AttachmentType = "image"
	AttachmentPDF   AttachmentType = "pdf"
	AttachmentFile  AttachmentType = "file"
)

// AlertLevel is the severity of a sitewide alert.
type AlertLevel string

// Alert level constants (typed).
const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// SubmissionStatus is the triage state of a form submission.
type SubmissionStatus string

// Submission status constants (typed).
const (
	SubmissionNew      SubmissionStatus = "new"
	SubmissionDone     SubmissionStatus = "done"
	SubmissionRejected SubmissionStatus = "rejected"
)

// IsValid reports whether the status belongs to the closed submission set.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionNew, SubmissionDone, SubmissionRejected:
		return true
	}
	return false
}

// AppointmentStatus is the triage state of an appointment request.
type AppointmentStatus string

// Appointment status constants (typed).
const (
	AppointmentPending  AppointmentStatus = "pending"
	AppointmentApproved AppointmentStatus = "approved"
	AppointmentRejected AppointmentStatus = "rejected"
)

// IsValid reports whether the status belongs to the closed appointment set.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentRejected:
		return true
	}
	return false
}

// SubmissionKind distinguishes form submissions from contact messages.
type SubmissionKind string

const (
	SubmissionForm    SubmissionKind = "form"
	SubmissionContact SubmissionKind = "contact"
)

// Attachment holds metadata for a file stored in the blob store and
// referenced by a content entity. The entity owns only the reference;
// deleting the entity does not delete the blob.
type Attachment struct {
	AttachmentURL  string         `json:"attachment_url,omitempty"`
	AttachmentType AttachmentType `json:"attachment_type,omitempty"`
	FileName       string         `json:"file_name,omitempty"`
}

// ConsularService describes one service offered by the consular section.
// Name and Details are the language-agnostic fallback values; I18n holds
// per-locale overrides resolved at read time.
type ConsularService struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Details string    `json:"details"`
	Attachment
	I18n      Translations `json:"i18n,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewsItem is a dated announcement shown on the public news page.
type NewsItem struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	Body    string    `json:"body,omitempty"`
	Attachment
	I18n      Translations `json:"i18n,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Alert is a sitewide banner message. Inactive alerts are still returned
// by list reads; selecting the active one is a client concern.
type Alert struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Active    bool         `json:"active"`
	Level     AlertLevel   `json:"level"`
	I18n      Translations `json:"i18n,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// FormDocument is a downloadable form offered to visitors.
type FormDocument struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Attachment
	I18n      Translations `json:"i18n,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// PromoSlide is one entry of the settings promo carousel.
type PromoSlide struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

// Settings is the sitewide singleton document: header contact info, hero
// banner text, status bar, opening hours, emergency info, map coordinates
// and promo slides. Its I18n tree is resolved field by field rather than
// per entity.
type Settings struct {
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	Address      string       `json:"address,omitempty"`
	HeroTitle    string       `json:"hero_title,omitempty"`
	HeroSubtitle string       `json:"hero_subtitle,omitempty"`
	StatusBar    string       `json:"status_bar,omitempty"`
	Hours        string       `json:"hours,omitempty"`
	Emergency    string       `json:"emergency,omitempty"`
	MapLat       float64      `json:"map_lat,omitempty"`
	MapLng       float64      `json:"map_lng,omitempty"`
	NotifyEmail  string       `json:"notify_email,omitempty"`
	Slides       []PromoSlide `json:"slides,omitempty"`
	I18n         Translations `json:"i18n,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Submission is an unauthenticated visitor intake record awaiting editor
// triage. It carries no translations.
type Submission struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone,omitempty"`
	Subject   string           `json:"subject,omitempty"`
	Message   string           `json:"message"`
	Kind      SubmissionKind   `json:"kind"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Appointment is a visitor-requested consular appointment slot.
type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone,omitempty"`
	ServiceName string            `json:"service_name"`
	Date        time.Time         `json:"date"`
	Notes       string            `json:"notes,omitempty"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
