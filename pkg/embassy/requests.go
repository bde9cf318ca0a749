package embassy

import (
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Request DTOs. Creates carry the base fields plus the i18n payload as
// submitted by the console; updates carry pointers so absent fields are
// left untouched (merge-write, last writer wins).

// CreateServiceRequest contains parameters for creating a consular service.
type CreateServiceRequest struct {
	Name       string       `json:"name"`
	Details    string       `json:"details"`
	Attachment Attachment   `json:"attachment"`
	I18n       Translations `json:"i18n"`
}

func (r CreateServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Details, validation.Required),
	)
}

// UpdateServiceRequest contains the merge payload for a service update.
type UpdateServiceRequest struct {
	Name       *string      `json:"name"`
	Details    *string      `json:"details"`
	Attachment *Attachment  `json:"attachment"`
	I18n       Translations `json:"i18n"`
}

// CreateNewsRequest contains parameters for creating a news item.
type CreateNewsRequest struct {
	Title      string       `json:"title"`
	Summary    string       `json:"summary"`
	Body       string       `json:"body"`
	Attachment Attachment   `json:"attachment"`
	I18n       Translations `json:"i18n"`
}

func (r CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Summary, validation.Required),
	)
}

// UpdateNewsRequest contains the merge payload for a news update.
type UpdateNewsRequest struct {
	Title      *string      `json:"title"`
	Summary    *string      `json:"summary"`
	Body       *string      `json:"body"`
	Attachment *Attachment  `json:"attachment"`
	I18n       Translations `json:"i18n"`
}

// CreateAlertRequest contains parameters for creating an alert. Active
// defaults to true when omitted.
type CreateAlertRequest struct {
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Active  *bool        `json:"active"`
	Level   AlertLevel   `json:"level"`
	I18n    Translations `json:"i18n"`
}

func (r CreateAlertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required),
		validation.Field(&r.Level, validation.Required,
			validation.In(AlertInfo, AlertWarning, AlertDanger)),
	)
}

// UpdateAlertRequest contains the merge payload for an alert update.
type UpdateAlertRequest struct {
	Title   *string      `json:"title"`
	Message *string      `json:"message"`
	Active  *bool        `json:"active"`
	Level   *AlertLevel  `json:"level"`
	I18n    Translations `json:"i18n"`
}

// CreateFormRequest contains parameters for creating a form document.
type CreateFormRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Attachment  Attachment   `json:"attachment"`
	I18n        Translations `json:"i18n"`
}

func (r CreateFormRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// UpdateFormRequest contains the merge payload for a form document update.
type UpdateFormRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Attachment  *Attachment  `json:"attachment"`
	I18n        Translations `json:"i18n"`
}

// UpdateSettingsRequest merges the supplied fields into the settings
// singleton. Slides and I18n replace the stored value whole when present.
type UpdateSettingsRequest struct {
	Phone        *string      `json:"phone"`
	Email        *string      `json:"email"`
	Address      *string      `json:"address"`
	HeroTitle    *string      `json:"hero_title"`
	HeroSubtitle *string      `json:"hero_subtitle"`
	StatusBar    *string      `json:"status_bar"`
	Hours        *string      `json:"hours"`
	Emergency    *string      `json:"emergency"`
	MapLat       *float64     `json:"map_lat"`
	MapLng       *float64     `json:"map_lng"`
	NotifyEmail  *string      `json:"notify_email"`
	Slides       []PromoSlide `json:"slides"`
	I18n         Translations `json:"i18n"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.NotifyEmail, is.Email),
	)
}

// CreateSubmissionRequest contains a visitor form submission.
type CreateSubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Message, validation.Required),
	)
}

// CreateAppointmentRequest contains a visitor appointment request.
type CreateAppointmentRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceName string    `json:"service_name"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
}

func (r CreateAppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.ServiceName, validation.Required),
		validation.Field(&r.Date, validation.Required),
	)
}

// UploadRequest contains parameters for proxying one file into the blob
// store. Size limiting happens at the transport layer; the service does
// not re-verify type or size.
type UploadRequest struct {
	Folder      string
	FileName    string
	ContentType string
	Reader      io.Reader
}

func (r UploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required),
	)
}

// UploadResult is returned by the upload proxy.
type UploadResult struct {
	URL            string         `json:"url"`
	ObjectKey      string         `json:"object_key"`
	FileName       string         `json:"file_name"`
	AttachmentType AttachmentType `json:"attachment_type"`
}
