package embassy_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/repo/memory"
	memorystorage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/memory"
)

// captureNotifier records notifications for assertions
type captureNotifier struct {
	mu    sync.Mutex
	sent  []capturedMail
	fail  bool
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (n *captureNotifier) Notify(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("smtp unreachable")
	}
	n.sent = append(n.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (n *captureNotifier) last() (capturedMail, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return capturedMail{}, false
	}
	return n.sent[len(n.sent)-1], true
}

func newTestService(t *testing.T) (embassy.Service, *captureNotifier) {
	t.Helper()
	notifier := &captureNotifier{}
	svc, err := embassy.New(
		embassy.WithRepository(memory.New()),
		embassy.WithNotifier(notifier),
		embassy.WithDefaultNotifyAddress("fallback@embassy.example"),
	)
	require.NoError(t, err)
	return svc, notifier
}

func TestServiceCreation(t *testing.T) {
	t.Run("RequiresRepository", func(t *testing.T) {
		_, err := embassy.New()
		assert.Error(t, err)
	})

	t.Run("DefaultsNotifierToNoop", func(t *testing.T) {
		svc, err := embassy.New(embassy.WithRepository(memory.New()))
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCreateServiceSanitizesDetails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateService(ctx, embassy.CreateServiceRequest{
		Name:    "Passport renewal",
		Details: "<p>Bring two photos</p><script>alert(1)</script>",
		I18n: embassy.Translations{
			embassy.LocaleRomanian: {
				"details": "<p>Aduceți două fotografii</p><script>alert(2)</script>",
			},
		},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Contains(t, entry.Details, "Bring two photos")
	assert.NotContains(t, entry.Details, "script")
	assert.NotContains(t, entry.I18n[embassy.LocaleRomanian]["details"], "script")
}

func TestCreateServiceValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateService(context.Background(), embassy.CreateServiceRequest{})
	assert.Error(t, err)
}

func TestUpdateServiceMergesFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateService(ctx, embassy.CreateServiceRequest{
		Name:    "Passport renewal",
		Details: "Bring two photos",
	})
	require.NoError(t, err)

	newName := "Passport renewal (adults)"
	updated, err := svc.UpdateService(ctx, entry.ID, embassy.UpdateServiceRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "Bring two photos", updated.Details)
	assert.Equal(t, entry.CreatedAt, updated.CreatedAt)
}

func TestUpdateServiceNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	name := "x"
	_, err := svc.UpdateService(context.Background(), uuid.New(), embassy.UpdateServiceRequest{Name: &name})
	assert.ErrorIs(t, err, embassy.ErrNotFound)
}

func TestDeleteServiceIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateService(ctx, embassy.CreateServiceRequest{
		Name:    "Notary services",
		Details: "Weekdays only",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(ctx, entry.ID))
	// Second delete of the same id still succeeds
	require.NoError(t, svc.DeleteService(ctx, entry.ID))

	_, err = svc.GetService(ctx, entry.ID, "")
	assert.ErrorIs(t, err, embassy.ErrNotFound)
}

func TestListNewsLocalizedAndSorted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateNews(ctx, embassy.CreateNewsRequest{
		Title:   "Older announcement",
		Summary: "s1",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.CreateNews(ctx, embassy.CreateNewsRequest{
		Title:   "Newer announcement",
		Summary: "s2",
		I18n: embassy.Translations{
			embassy.LocaleRomanian: {"title": "Anunț mai nou"},
		},
	})
	require.NoError(t, err)

	items, err := svc.ListNews(ctx, embassy.LocaleRomanian)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Anunț mai nou", items[0].Title)
	assert.Equal(t, "Older announcement", items[1].Title)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestCreateAlertDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	alert, err := svc.CreateAlert(ctx, embassy.CreateAlertRequest{
		Title:   "Holiday closure",
		Message: "Closed on the 1st",
		Level:   embassy.AlertInfo,
	})
	require.NoError(t, err)
	assert.True(t, alert.Active)

	_, err = svc.CreateAlert(ctx, embassy.CreateAlertRequest{
		Message: "Bad level",
		Level:   "catastrophic",
	})
	assert.Error(t, err)
}

func TestUpdateAlertRejectsInvalidLevel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	alert, err := svc.CreateAlert(ctx, embassy.CreateAlertRequest{
		Message: "Closed on the 1st",
		Level:   embassy.AlertInfo,
	})
	require.NoError(t, err)

	bad := embassy.AlertLevel("catastrophic")
	_, err = svc.UpdateAlert(ctx, alert.ID, embassy.UpdateAlertRequest{Level: &bad})
	assert.ErrorIs(t, err, embassy.ErrInvalidLevel)
}

func TestSettingsLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Never saved: zero document, not an error
	settings, err := svc.GetSettings(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, settings.Phone)

	phone := "+40 21 000 0000"
	hero := "Welcome"
	_, err = svc.UpdateSettings(ctx, embassy.UpdateSettingsRequest{
		Phone:     &phone,
		HeroTitle: &hero,
	})
	require.NoError(t, err)

	email := "office@embassy.example"
	saved, err := svc.UpdateSettings(ctx, embassy.UpdateSettingsRequest{Email: &email})
	require.NoError(t, err)

	// Merge keeps earlier fields
	assert.Equal(t, phone, saved.Phone)
	assert.Equal(t, hero, saved.HeroTitle)
	assert.Equal(t, email, saved.Email)
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestUpdateSettingsRejectsBadEmail(t *testing.T) {
	svc, _ := newTestService(t)

	bad := "not-an-email"
	_, err := svc.UpdateSettings(context.Background(), embassy.UpdateSettingsRequest{Email: &bad})
	assert.Error(t, err)
}

func TestCreateSubmissionNotifies(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	sub, err := svc.CreateSubmission(ctx, embassy.CreateSubmissionRequest{
		Name:    "Ana Pop",
		Email:   "ana@example.com",
		Message: "I need a visa appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, embassy.SubmissionForm, sub.Kind)
	assert.Equal(t, embassy.SubmissionNew, sub.Status)

	mail, ok := notifier.last()
	require.True(t, ok)
	// No settings saved yet: configured default address wins
	assert.Equal(t, "fallback@embassy.example", mail.To)
	assert.Contains(t, mail.Subject, "Ana Pop")
}

func TestNotifyAddressResolution(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	email := "office@embassy.example"
	_, err := svc.UpdateSettings(ctx, embassy.UpdateSettingsRequest{Email: &email})
	require.NoError(t, err)

	_, err = svc.CreateContact(ctx, embassy.CreateSubmissionRequest{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	mail, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "office@embassy.example", mail.To)

	// NotifyEmail takes precedence over the contact address
	notify := "intake@embassy.example"
	_, err = svc.UpdateSettings(ctx, embassy.UpdateSettingsRequest{NotifyEmail: &notify})
	require.NoError(t, err)

	_, err = svc.CreateContact(ctx, embassy.CreateSubmissionRequest{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "hello again",
	})
	require.NoError(t, err)

	mail, ok = notifier.last()
	require.True(t, ok)
	assert.Equal(t, "intake@embassy.example", mail.To)
}

func TestIntakeSucceedsWhenNotifierFails(t *testing.T) {
	svc, notifier := newTestService(t)
	notifier.fail = true

	sub, err := svc.CreateSubmission(context.Background(), embassy.CreateSubmissionRequest{
		Name:    "Ana Pop",
		Email:   "ana@example.com",
		Message: "still expect a record",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sub.ID)
}

func TestCreateContactSetsKind(t *testing.T) {
	svc, _ := newTestService(t)

	sub, err := svc.CreateContact(context.Background(), embassy.CreateSubmissionRequest{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "general question",
	})
	require.NoError(t, err)
	assert.Equal(t, embassy.SubmissionContact, sub.Kind)
}

func TestUpdateSubmissionStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sub, err := svc.CreateSubmission(ctx, embassy.CreateSubmissionRequest{
		Name:    "Ana Pop",
		Email:   "ana@example.com",
		Message: "msg",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSubmissionStatus(ctx, sub.ID, embassy.SubmissionDone)
	require.NoError(t, err)
	assert.Equal(t, embassy.SubmissionDone, updated.Status)

	_, err = svc.UpdateSubmissionStatus(ctx, sub.ID, "archived")
	assert.ErrorIs(t, err, embassy.ErrInvalidStatus)
}

func TestCreateAppointment(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, embassy.CreateAppointmentRequest{
		Name:        "Ana Pop",
		Email:       "ana@example.com",
		ServiceName: "Passport renewal",
		Date:        time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, embassy.AppointmentPending, appt.Status)

	mail, ok := notifier.last()
	require.True(t, ok)
	assert.Contains(t, mail.Body, "Passport renewal")

	updated, err := svc.UpdateAppointmentStatus(ctx, appt.ID, embassy.AppointmentApproved)
	require.NoError(t, err)
	assert.Equal(t, embassy.AppointmentApproved, updated.Status)
}

func TestStorageServiceUpload(t *testing.T) {
	store := memorystorage.New("http://localhost/blobs")
	storage, err := embassy.NewStorageService(embassy.WithBlobStore(store))
	require.NoError(t, err)

	result, err := storage.Upload(context.Background(), embassy.UploadRequest{
		Folder:      "forms",
		FileName:    "visa application.pdf",
		ContentType: "application/pdf",
		Reader:      strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ObjectKey, "forms/"))
	assert.True(t, strings.HasSuffix(result.ObjectKey, "_visa_application.pdf"))
	assert.Equal(t, "http://localhost/blobs/"+result.ObjectKey, result.URL)
	assert.Equal(t, embassy.AttachmentPDF, result.AttachmentType)
	assert.Equal(t, "visa application.pdf", result.FileName)

	rc, err := store.Download(context.Background(), result.ObjectKey)
	require.NoError(t, err)
	defer rc.Close()
}

func TestStorageServiceRequiresStore(t *testing.T) {
	_, err := embassy.NewStorageService()
	assert.Error(t, err)
}

func TestAttachmentTypeOf(t *testing.T) {
	assert.Equal(t, embassy.AttachmentImage, embassy.AttachmentTypeOf("image/png"))
	assert.Equal(t, embassy.AttachmentPDF, embassy.AttachmentTypeOf("application/pdf"))
	assert.Equal(t, embassy.AttachmentFile, embassy.AttachmentTypeOf("application/zip"))
	assert.Equal(t, embassy.AttachmentFile, embassy.AttachmentTypeOf(""))
}
