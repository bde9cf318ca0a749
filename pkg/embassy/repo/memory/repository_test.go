package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/repo/memory"
)

func TestServiceCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	entry := &embassy.ConsularService{
		ID:        uuid.New(),
		Name:      "Passport renewal",
		Details:   "Bring two photos",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.CreateService(ctx, entry))

	got, err := repo.GetService(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Name, got.Name)

	// Mutating the returned copy must not affect the stored entry
	got.Name = "changed"
	again, err := repo.GetService(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Passport renewal", again.Name)

	entry.Details = "Bring two photos and the old passport"
	require.NoError(t, repo.UpdateService(ctx, entry))

	got, err = repo.GetService(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Details, got.Details)

	require.NoError(t, repo.DeleteService(ctx, entry.ID))
	_, err = repo.GetService(ctx, entry.ID)
	assert.ErrorIs(t, err, embassy.ErrNotFound)

	// Idempotent delete
	require.NoError(t, repo.DeleteService(ctx, entry.ID))
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetService(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetNews(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetAlert(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetForm(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetSubmission(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetAppointment(ctx, id)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
	_, err = repo.GetSettings(ctx)
	assert.ErrorIs(t, err, embassy.ErrNotFound)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	err := repo.UpdateNews(ctx, &embassy.NewsItem{ID: uuid.New()})
	assert.ErrorIs(t, err, embassy.ErrNotFound)
}

func TestListNewsSortedDescending(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	base := time.Now().UTC()
	old := &embassy.NewsItem{ID: uuid.New(), Title: "old", CreatedAt: base.Add(-time.Hour)}
	mid := &embassy.NewsItem{ID: uuid.New(), Title: "mid", CreatedAt: base.Add(-time.Minute)}
	new_ := &embassy.NewsItem{ID: uuid.New(), Title: "new", CreatedAt: base}

	require.NoError(t, repo.CreateNews(ctx, mid))
	require.NoError(t, repo.CreateNews(ctx, old))
	require.NoError(t, repo.CreateNews(ctx, new_))

	items, err := repo.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "new", items[0].Title)
	assert.Equal(t, "mid", items[1].Title)
	assert.Equal(t, "old", items[2].Title)
}

func TestSettingsSingleton(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	settings := &embassy.Settings{Phone: "+40 21 000 0000", UpdatedAt: time.Now().UTC()}
	require.NoError(t, repo.SaveSettings(ctx, settings))

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Phone, got.Phone)

	// Second save replaces the document
	settings.Phone = "+40 21 111 1111"
	require.NoError(t, repo.SaveSettings(ctx, settings))

	got, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+40 21 111 1111", got.Phone)
}

func TestSubmissionLifecycle(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	sub := &embassy.Submission{
		ID:        uuid.New(),
		Name:      "Ana Pop",
		Email:     "ana@example.com",
		Message:   "msg",
		Kind:      embassy.SubmissionForm,
		Status:    embassy.SubmissionNew,
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.CreateSubmission(ctx, sub))

	sub.Status = embassy.SubmissionDone
	require.NoError(t, repo.UpdateSubmission(ctx, sub))

	got, err := repo.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, embassy.SubmissionDone, got.Status)

	list, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteSubmission(ctx, sub.ID))
	list, err = repo.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
