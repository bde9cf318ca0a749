package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
	memorystorage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/memory"
)

func TestMemoryBackend(t *testing.T) {
	backend := memorystorage.New("http://localhost/blobs")
	ctx := context.Background()
	testKey := "news/abc123_photo.jpg"
	testData := "fake image bytes"

	t.Run("Upload", func(t *testing.T) {
		err := backend.Upload(ctx, testKey, "image/jpeg", strings.NewReader(testData))
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", backend.ContentType(testKey))
	})

	t.Run("Download", func(t *testing.T) {
		reader, err := backend.Download(ctx, testKey)
		require.NoError(t, err)
		defer reader.Close()

		data, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, testData, string(data))
	})

	t.Run("PublicURL", func(t *testing.T) {
		assert.Equal(t, "http://localhost/blobs/"+testKey, backend.PublicURL(testKey))
	})

	t.Run("DownloadMissing", func(t *testing.T) {
		_, err := backend.Download(ctx, "missing/key")
		assert.ErrorIs(t, err, embassy.ErrNotFound)
	})

	t.Run("DefaultContentType", func(t *testing.T) {
		err := backend.Upload(ctx, "misc/blob", "", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", backend.ContentType("misc/blob"))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, backend.Delete(ctx, testKey))
		_, err := backend.Download(ctx, testKey)
		assert.ErrorIs(t, err, embassy.ErrNotFound)

		// Deleting a missing key succeeds
		assert.NoError(t, backend.Delete(ctx, testKey))
	})
}
