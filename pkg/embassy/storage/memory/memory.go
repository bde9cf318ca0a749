// Package memory provides an in-memory blob store, used for tests.
package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// Backend is an in-memory implementation of the embassy.BlobStore interface
type Backend struct {
	mu           sync.RWMutex
	objects      map[string][]byte
	contentTypes map[string]string
	baseURL      string
}

// New creates a new in-memory storage backend. Public URLs are rooted
// at baseURL, typically something like "http://localhost/blobs".
func New(baseURL string) *Backend {
	return &Backend{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		baseURL:      baseURL,
	}
}

// Upload stores the content in memory
func (b *Backend) Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = data
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	b.contentTypes[objectKey] = contentType
	return nil
}

// Download returns the stored content
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, embassy.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes the stored content. Missing keys are not an error.
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.objects, objectKey)
	return nil
}

// PublicURL returns the URL the object would be served from
func (b *Backend) PublicURL(objectKey string) string {
	return b.baseURL + "/" + objectKey
}

// ContentType reports the stored content type, for tests
func (b *Backend) ContentType(objectKey string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.contentTypes[objectKey]
}
