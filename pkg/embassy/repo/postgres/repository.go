// Package postgres provides the PostgreSQL repository.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements embassy.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) embassy.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) embassy.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "settings") {
				return fmt.Errorf("settings row already exists")
			}
			return fmt.Errorf("duplicate entry")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return embassy.ErrNotFound
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Consular services

func (r *Repository) CreateService(ctx context.Context, s *embassy.ConsularService) error {
	query := `
		INSERT INTO consular_services (
			id, name, details, attachment_url, attachment_type, file_name,
			i18n, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Details, s.AttachmentURL, s.AttachmentType,
		s.FileName, s.I18n, s.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create service", err)
	}

	return nil
}

func (r *Repository) GetService(ctx context.Context, id uuid.UUID) (*embassy.ConsularService, error) {
	query := `
        SELECT id, name, details, attachment_url, attachment_type, file_name,
               i18n, created_at
        FROM consular_services WHERE id = $1`

	var s embassy.ConsularService
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Details, &s.AttachmentURL, &s.AttachmentType,
		&s.FileName, &s.I18n, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *Repository) UpdateService(ctx context.Context, s *embassy.ConsularService) error {
	query := `
		UPDATE consular_services SET
			name = $2, details = $3, attachment_url = $4, attachment_type = $5,
			file_name = $6, i18n = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Details, s.AttachmentURL, s.AttachmentType,
		s.FileName, s.I18n)
	if err != nil {
		return r.handlePostgresError("update service", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteService(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM consular_services WHERE id = $1`, id)
	return err
}

func (r *Repository) ListServices(ctx context.Context) ([]*embassy.ConsularService, error) {
	query := `
        SELECT id, name, details, attachment_url, attachment_type, file_name,
               i18n, created_at
        FROM consular_services ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.ConsularService
	for rows.Next() {
		var s embassy.ConsularService
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Details, &s.AttachmentURL, &s.AttachmentType,
			&s.FileName, &s.I18n, &s.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &s)
	}

	return entries, rows.Err()
}

// News

func (r *Repository) CreateNews(ctx context.Context, n *embassy.NewsItem) error {
	query := `
		INSERT INTO news_items (
			id, title, summary, body, attachment_url, attachment_type,
			file_name, i18n, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		n.ID, n.Title, n.Summary, n.Body, n.AttachmentURL, n.AttachmentType,
		n.FileName, n.I18n, n.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create news", err)
	}

	return nil
}

func (r *Repository) GetNews(ctx context.Context, id uuid.UUID) (*embassy.NewsItem, error) {
	query := `
        SELECT id, title, summary, body, attachment_url, attachment_type,
               file_name, i18n, created_at
        FROM news_items WHERE id = $1`

	var n embassy.NewsItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Summary, &n.Body, &n.AttachmentURL,
		&n.AttachmentType, &n.FileName, &n.I18n, &n.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *Repository) UpdateNews(ctx context.Context, n *embassy.NewsItem) error {
	query := `
		UPDATE news_items SET
			title = $2, summary = $3, body = $4, attachment_url = $5,
			attachment_type = $6, file_name = $7, i18n = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		n.ID, n.Title, n.Summary, n.Body, n.AttachmentURL,
		n.AttachmentType, n.FileName, n.I18n)
	if err != nil {
		return r.handlePostgresError("update news", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM news_items WHERE id = $1`, id)
	return err
}

func (r *Repository) ListNews(ctx context.Context) ([]*embassy.NewsItem, error) {
	query := `
        SELECT id, title, summary, body, attachment_url, attachment_type,
               file_name, i18n, created_at
        FROM news_items ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.NewsItem
	for rows.Next() {
		var n embassy.NewsItem
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Summary, &n.Body, &n.AttachmentURL,
			&n.AttachmentType, &n.FileName, &n.I18n, &n.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &n)
	}

	return entries, rows.Err()
}

// Alerts

func (r *Repository) CreateAlert(ctx context.Context, a *embassy.Alert) error {
	query := `
		INSERT INTO alerts (id, title, message, active, level, i18n, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Message, a.Active, a.Level, a.I18n, a.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create alert", err)
	}

	return nil
}

func (r *Repository) GetAlert(ctx context.Context, id uuid.UUID) (*embassy.Alert, error) {
	query := `
        SELECT id, title, message, active, level, i18n, created_at
        FROM alerts WHERE id = $1`

	var a embassy.Alert
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Message, &a.Active, &a.Level, &a.I18n, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *Repository) UpdateAlert(ctx context.Context, a *embassy.Alert) error {
	query := `
		UPDATE alerts SET
			title = $2, message = $3, active = $4, level = $5, i18n = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Message, a.Active, a.Level, a.I18n)
	if err != nil {
		return r.handlePostgresError("update alert", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	return err
}

func (r *Repository) ListAlerts(ctx context.Context) ([]*embassy.Alert, error) {
	query := `
        SELECT id, title, message, active, level, i18n, created_at
        FROM alerts ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.Alert
	for rows.Next() {
		var a embassy.Alert
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Message, &a.Active, &a.Level, &a.I18n,
			&a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &a)
	}

	return entries, rows.Err()
}

// Form documents

func (r *Repository) CreateForm(ctx context.Context, f *embassy.FormDocument) error {
	query := `
		INSERT INTO form_documents (
			id, name, description, attachment_url, attachment_type, file_name,
			i18n, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		f.ID, f.Name, f.Description, f.AttachmentURL, f.AttachmentType,
		f.FileName, f.I18n, f.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create form", err)
	}

	return nil
}

func (r *Repository) GetForm(ctx context.Context, id uuid.UUID) (*embassy.FormDocument, error) {
	query := `
        SELECT id, name, description, attachment_url, attachment_type,
               file_name, i18n, created_at
        FROM form_documents WHERE id = $1`

	var f embassy.FormDocument
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Description, &f.AttachmentURL, &f.AttachmentType,
		&f.FileName, &f.I18n, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &f, nil
}

func (r *Repository) UpdateForm(ctx context.Context, f *embassy.FormDocument) error {
	query := `
		UPDATE form_documents SET
			name = $2, description = $3, attachment_url = $4,
			attachment_type = $5, file_name = $6, i18n = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		f.ID, f.Name, f.Description, f.AttachmentURL, f.AttachmentType,
		f.FileName, f.I18n)
	if err != nil {
		return r.handlePostgresError("update form", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteForm(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM form_documents WHERE id = $1`, id)
	return err
}

func (r *Repository) ListForms(ctx context.Context) ([]*embassy.FormDocument, error) {
	query := `
        SELECT id, name, description, attachment_url, attachment_type,
               file_name, i18n, created_at
        FROM form_documents ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.FormDocument
	for rows.Next() {
		var f embassy.FormDocument
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Description, &f.AttachmentURL, &f.AttachmentType,
			&f.FileName, &f.I18n, &f.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &f)
	}

	return entries, rows.Err()
}

// Settings singleton. The table holds at most one row, pinned by id = TRUE.

func (r *Repository) GetSettings(ctx context.Context) (*embassy.Settings, error) {
	query := `
        SELECT phone, email, address, hero_title, hero_subtitle, status_bar,
               hours, emergency, map_lat, map_lng, notify_email, slides,
               i18n, updated_at
        FROM site_settings WHERE id = TRUE`

	var s embassy.Settings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.Phone, &s.Email, &s.Address, &s.HeroTitle, &s.HeroSubtitle,
		&s.StatusBar, &s.Hours, &s.Emergency, &s.MapLat, &s.MapLng,
		&s.NotifyEmail, &s.Slides, &s.I18n, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *Repository) SaveSettings(ctx context.Context, s *embassy.Settings) error {
	query := `
		INSERT INTO site_settings (
			id, phone, email, address, hero_title, hero_subtitle, status_bar,
			hours, emergency, map_lat, map_lng, notify_email, slides, i18n,
			updated_at
		) VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			status_bar = EXCLUDED.status_bar,
			hours = EXCLUDED.hours,
			emergency = EXCLUDED.emergency,
			map_lat = EXCLUDED.map_lat,
			map_lng = EXCLUDED.map_lng,
			notify_email = EXCLUDED.notify_email,
			slides = EXCLUDED.slides,
			i18n = EXCLUDED.i18n,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		s.Phone, s.Email, s.Address, s.HeroTitle, s.HeroSubtitle, s.StatusBar,
		s.Hours, s.Emergency, s.MapLat, s.MapLng, s.NotifyEmail, s.Slides,
		s.I18n, s.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("save settings", err)
	}

	return nil
}

// Submissions

func (r *Repository) CreateSubmission(ctx context.Context, s *embassy.Submission) error {
	query := `
		INSERT INTO submissions (
			id, name, email, phone, subject, message, kind, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Kind,
		s.Status, s.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create submission", err)
	}

	return nil
}

func (r *Repository) GetSubmission(ctx context.Context, id uuid.UUID) (*embassy.Submission, error) {
	query := `
        SELECT id, name, email, phone, subject, message, kind, status, created_at
        FROM submissions WHERE id = $1`

	var s embassy.Submission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message,
		&s.Kind, &s.Status, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *Repository) UpdateSubmission(ctx context.Context, s *embassy.Submission) error {
	query := `
		UPDATE submissions SET
			name = $2, email = $3, phone = $4, subject = $5, message = $6,
			kind = $7, status = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Kind, s.Status)
	if err != nil {
		return r.handlePostgresError("update submission", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	return err
}

func (r *Repository) ListSubmissions(ctx context.Context) ([]*embassy.Submission, error) {
	query := `
        SELECT id, name, email, phone, subject, message, kind, status, created_at
        FROM submissions ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.Submission
	for rows.Next() {
		var s embassy.Submission
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message,
			&s.Kind, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &s)
	}

	return entries, rows.Err()
}

// Appointments

func (r *Repository) CreateAppointment(ctx context.Context, a *embassy.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, name, email, phone, service_name, date, notes, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.ServiceName, a.Date, a.Notes,
		a.Status, a.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create appointment", err)
	}

	return nil
}

func (r *Repository) GetAppointment(ctx context.Context, id uuid.UUID) (*embassy.Appointment, error) {
	query := `
        SELECT id, name, email, phone, service_name, date, notes, status, created_at
        FROM appointments WHERE id = $1`

	var a embassy.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.ServiceName, &a.Date,
		&a.Notes, &a.Status, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, embassy.ErrNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *Repository) UpdateAppointment(ctx context.Context, a *embassy.Appointment) error {
	query := `
		UPDATE appointments SET
			name = $2, email = $3, phone = $4, service_name = $5, date = $6,
			notes = $7, status = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.ServiceName, a.Date, a.Notes, a.Status)
	if err != nil {
		return r.handlePostgresError("update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return embassy.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *Repository) ListAppointments(ctx context.Context) ([]*embassy.Appointment, error) {
	query := `
        SELECT id, name, email, phone, service_name, date, notes, status, created_at
        FROM appointments ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*embassy.Appointment
	for rows.Next() {
		var a embassy.Appointment
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Phone, &a.ServiceName, &a.Date,
			&a.Notes, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &a)
	}

	return entries, rows.Err()
}
