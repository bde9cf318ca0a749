// Package fs provides a filesystem blob store backend.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Base directory for storing files
	URLPrefix string // URL prefix the files are served under
}

// Backend is a filesystem implementation of the embassy.BlobStore interface
type Backend struct {
	baseDir   string
	urlPrefix string
}

// New creates a new filesystem storage backend
func New(config Config) (embassy.BlobStore, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir:   config.BaseDir,
		urlPrefix: strings.TrimSuffix(config.URLPrefix, "/"),
	}, nil
}

// Upload writes the content to disk, creating intermediate directories
func (b *Backend) Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Download opens the stored file
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, embassy.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes the stored file. Missing keys are not an error.
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// PublicURL returns the URL the object is served from
func (b *Backend) PublicURL(objectKey string) string {
	return b.urlPrefix + "/" + objectKey
}
