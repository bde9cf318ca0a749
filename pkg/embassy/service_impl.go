package embassy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/objectkey"
)

// htmlSanitizer strips unsafe markup from rich-text fields before they
// are persisted. UGCPolicy allows the usual formatting tags and nothing
// executable.
var htmlSanitizer = bluemonday.UGCPolicy()

// Option configures the service returned by New.
type Option func(*service)

// WithRepository sets the persistence layer. Required.
func WithRepository(repo Repository) Option {
	return func(s *service) { s.repo = repo }
}

// WithNotifier sets the intake notifier. Defaults to a no-op.
func WithNotifier(n Notifier) Option {
	return func(s *service) { s.notifier = n }
}

// WithDefaultNotifyAddress sets the recipient used when the settings
// document carries no notification address.
func WithDefaultNotifyAddress(addr string) Option {
	return func(s *service) { s.notifyAddr = addr }
}

type service struct {
	repo       Repository
	notifier   Notifier
	notifyAddr string
}

// New creates the content service.
func New(opts ...Option) (Service, error) {
	s := &service{notifier: NewNoopNotifier()}
	for _, opt := range opts {
		opt(s)
	}
	if s.repo == nil {
		return nil, errors.New("repository is required")
	}
	return s, nil
}

// Consular services

func (s *service) CreateService(ctx context.Context, req CreateServiceRequest) (*ConsularService, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := &ConsularService{
		ID:         uuid.New(),
		Name:       req.Name,
		Details:    htmlSanitizer.Sanitize(req.Details),
		Attachment: req.Attachment,
		I18n:       sanitizeTranslations(req.I18n, "details"),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateService(ctx, entry); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return entry, nil
}

func (s *service) GetService(ctx context.Context, id uuid.UUID, lang Locale) (*ConsularService, error) {
	entry, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	localized := entry.Localized(lang)
	return &localized, nil
}

func (s *service) ListServices(ctx context.Context, lang Locale) ([]*ConsularService, error) {
	entries, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ConsularService, len(entries))
	for i, entry := range entries {
		localized := entry.Localized(lang)
		out[i] = &localized
	}
	return out, nil
}

func (s *service) UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ConsularService, error) {
	entry, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Details != nil {
		entry.Details = htmlSanitizer.Sanitize(*req.Details)
	}
	if req.Attachment != nil {
		entry.Attachment = *req.Attachment
	}
	if req.I18n != nil {
		entry.I18n = sanitizeTranslations(req.I18n, "details")
	}
	if err := s.repo.UpdateService(ctx, entry); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteService(ctx, id)
}

// News

func (s *service) CreateNews(ctx context.Context, req CreateNewsRequest) (*NewsItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := &NewsItem{
		ID:         uuid.New(),
		Title:      req.Title,
		Summary:    req.Summary,
		Body:       htmlSanitizer.Sanitize(req.Body),
		Attachment: req.Attachment,
		I18n:       sanitizeTranslations(req.I18n, "body"),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateNews(ctx, entry); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return entry, nil
}

func (s *service) GetNews(ctx context.Context, id uuid.UUID, lang Locale) (*NewsItem, error) {
	entry, err := s.repo.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	localized := entry.Localized(lang)
	return &localized, nil
}

func (s *service) ListNews(ctx context.Context, lang Locale) ([]*NewsItem, error) {
	entries, err := s.repo.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*NewsItem, len(entries))
	for i, entry := range entries {
		localized := entry.Localized(lang)
		out[i] = &localized
	}
	return out, nil
}

func (s *service) UpdateNews(ctx context.Context, id uuid.UUID, req UpdateNewsRequest) (*NewsItem, error) {
	entry, err := s.repo.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Summary != nil {
		entry.Summary = *req.Summary
	}
	if req.Body != nil {
		entry.Body = htmlSanitizer.Sanitize(*req.Body)
	}
	if req.Attachment != nil {
		entry.Attachment = *req.Attachment
	}
	if req.I18n != nil {
		entry.I18n = sanitizeTranslations(req.I18n, "body")
	}
	if err := s.repo.UpdateNews(ctx, entry); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteNews(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNews(ctx, id)
}

// Alerts

func (s *service) CreateAlert(ctx context.Context, req CreateAlertRequest) (*Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	entry := &Alert{
		ID:        uuid.New(),
		Title:     req.Title,
		Message:   req.Message,
		Active:    active,
		Level:     req.Level,
		I18n:      req.I18n,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateAlert(ctx, entry); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	return entry, nil
}

func (s *service) GetAlert(ctx context.Context, id uuid.UUID, lang Locale) (*Alert, error) {
	entry, err := s.repo.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	localized := entry.Localized(lang)
	return &localized, nil
}

func (s *service) ListAlerts(ctx context.Context, lang Locale) ([]*Alert, error) {
	entries, err := s.repo.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Alert, len(entries))
	for i, entry := range entries {
		localized := entry.Localized(lang)
		out[i] = &localized
	}
	return out, nil
}

func (s *service) UpdateAlert(ctx context.Context, id uuid.UUID, req UpdateAlertRequest) (*Alert, error) {
	entry, err := s.repo.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Message != nil {
		entry.Message = *req.Message
	}
	if req.Active != nil {
		entry.Active = *req.Active
	}
	if req.Level != nil {
		switch *req.Level {
		case AlertInfo, AlertWarning, AlertDanger:
			entry.Level = *req.Level
		default:
			return nil, ErrInvalidLevel
		}
	}
	if req.I18n != nil {
		entry.I18n = req.I18n
	}
	if err := s.repo.UpdateAlert(ctx, entry); err != nil {
		return nil, fmt.Errorf("update alert: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAlert(ctx, id)
}

// Form documents

func (s *service) CreateForm(ctx context.Context, req CreateFormRequest) (*FormDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := &FormDocument{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: htmlSanitizer.Sanitize(req.Description),
		Attachment:  req.Attachment,
		I18n:        sanitizeTranslations(req.I18n, "description"),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateForm(ctx, entry); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	return entry, nil
}

func (s *service) GetForm(ctx context.Context, id uuid.UUID, lang Locale) (*FormDocument, error) {
	entry, err := s.repo.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	localized := entry.Localized(lang)
	return &localized, nil
}

func (s *service) ListForms(ctx context.Context, lang Locale) ([]*FormDocument, error) {
	entries, err := s.repo.ListForms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*FormDocument, len(entries))
	for i, entry := range entries {
		localized := entry.Localized(lang)
		out[i] = &localized
	}
	return out, nil
}

func (s *service) UpdateForm(ctx context.Context, id uuid.UUID, req UpdateFormRequest) (*FormDocument, error) {
	entry, err := s.repo.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Description != nil {
		entry.Description = htmlSanitizer.Sanitize(*req.Description)
	}
	if req.Attachment != nil {
		entry.Attachment = *req.Attachment
	}
	if req.I18n != nil {
		entry.I18n = sanitizeTranslations(req.I18n, "description")
	}
	if err := s.repo.UpdateForm(ctx, entry); err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteForm(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteForm(ctx, id)
}

// Settings

func (s *service) GetSettings(ctx context.Context, lang Locale) (*Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, ErrNotFound) {
		// Never saved yet: serve the zero document.
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	localized := settings.Localized(lang)
	return &localized, nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, ErrNotFound) {
		settings = &Settings{}
	} else if err != nil {
		return nil, err
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.HeroTitle != nil {
		settings.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		settings.HeroSubtitle = *req.HeroSubtitle
	}
	if req.StatusBar != nil {
		settings.StatusBar = *req.StatusBar
	}
	if req.Hours != nil {
		settings.Hours = *req.Hours
	}
	if req.Emergency != nil {
		settings.Emergency = *req.Emergency
	}
	if req.MapLat != nil {
		settings.MapLat = *req.MapLat
	}
	if req.MapLng != nil {
		settings.MapLng = *req.MapLng
	}
	if req.NotifyEmail != nil {
		settings.NotifyEmail = *req.NotifyEmail
	}
	if req.Slides != nil {
		settings.Slides = req.Slides
	}
	if req.I18n != nil {
		settings.I18n = req.I18n
	}
	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// Intake

func (s *service) CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (*Submission, error) {
	return s.createSubmission(ctx, req, SubmissionForm)
}

func (s *service) CreateContact(ctx context.Context, req CreateSubmissionRequest) (*Submission, error) {
	return s.createSubmission(ctx, req, SubmissionContact)
}

func (s *service) createSubmission(ctx context.Context, req CreateSubmissionRequest, kind SubmissionKind) (*Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := &Submission{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Kind:      kind,
		Status:    SubmissionNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateSubmission(ctx, entry); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	subject := fmt.Sprintf("New %s from %s", kind, entry.Name)
	s.notifyEditors(ctx, subject, entry.Message)
	return entry, nil
}

func (s *service) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return s.repo.GetSubmission(ctx, id)
}

func (s *service) ListSubmissions(ctx context.Context) ([]*Submission, error) {
	return s.repo.ListSubmissions(ctx)
}

func (s *service) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status SubmissionStatus) (*Submission, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	entry, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Status = status
	if err := s.repo.UpdateSubmission(ctx, entry); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSubmission(ctx, id)
}

func (s *service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := &Appointment{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Notes:       req.Notes,
		Status:      AppointmentPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateAppointment(ctx, entry); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	subject := fmt.Sprintf("New appointment request from %s", entry.Name)
	body := fmt.Sprintf("%s requested %s on %s", entry.Name, entry.ServiceName, entry.Date.Format(time.RFC1123))
	s.notifyEditors(ctx, subject, body)
	return entry, nil
}

func (s *service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetAppointment(ctx, id)
}

func (s *service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.repo.ListAppointments(ctx)
}

func (s *service) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	entry, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Status = status
	if err := s.repo.UpdateAppointment(ctx, entry); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return entry, nil
}

func (s *service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAppointment(ctx, id)
}

// notifyEditors sends a best-effort notification. Delivery failures are
// logged and swallowed: intake succeeds once the record is persisted.
func (s *service) notifyEditors(ctx context.Context, subject, body string) {
	to := s.notifyAddr
	if settings, err := s.repo.GetSettings(ctx); err == nil {
		if settings.NotifyEmail != "" {
			to = settings.NotifyEmail
		} else if settings.Email != "" {
			to = settings.Email
		}
	}
	if to == "" {
		return
	}
	if err := s.notifier.Notify(ctx, to, subject, body); err != nil {
		slog.Warn("Failed to send intake notification", "to", to, "err", err)
	}
}

// sanitizeTranslations runs the HTML sanitizer over the named rich-text
// field of every locale, leaving plain-text fields untouched.
func sanitizeTranslations(t Translations, richField string) Translations {
	if t == nil {
		return nil
	}
	out := make(Translations, len(t))
	for lang, fields := range t {
		copied := make(map[string]string, len(fields))
		for k, v := range fields {
			if k == richField {
				v = htmlSanitizer.Sanitize(v)
			}
			copied[k] = v
		}
		out[lang] = copied
	}
	return out
}

// Upload proxy

type storageService struct {
	store BlobStore
	keys  objectkey.Generator
}

// StorageOption configures the storage service.
type StorageOption func(*storageService)

// WithBlobStore sets the backing blob store. Required.
func WithBlobStore(store BlobStore) StorageOption {
	return func(s *storageService) { s.store = store }
}

// WithKeyGenerator overrides the default random-prefix key generator.
func WithKeyGenerator(g objectkey.Generator) StorageOption {
	return func(s *storageService) { s.keys = g }
}

// NewStorageService creates the upload proxy service.
func NewStorageService(opts ...StorageOption) (StorageService, error) {
	s := &storageService{keys: objectkey.NewRandomPrefixGenerator()}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		return nil, errors.New("blob store is required")
	}
	return s, nil
}

func (s *storageService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	key := s.keys.GenerateKey(req.Folder, req.FileName)
	if err := s.store.Upload(ctx, key, req.ContentType, req.Reader); err != nil {
		return nil, &StorageError{Key: key, Op: "upload", Err: err}
	}
	return &UploadResult{
		URL:            s.store.PublicURL(key),
		ObjectKey:      key,
		FileName:       req.FileName,
		AttachmentType: AttachmentTypeOf(req.ContentType),
	}, nil
}

// AttachmentTypeOf classifies a MIME type for display purposes.
func AttachmentTypeOf(contentType string) AttachmentType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return AttachmentImage
	case contentType == "application/pdf":
		return AttachmentPDF
	default:
		return AttachmentFile
	}
}
