package embassy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus indicates a status outside its closed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidLevel indicates an alert level outside info/warning/danger.
	ErrInvalidLevel = errors.New("invalid alert level")

	// ErrUploadFailed indicates an upload to the blob store failed.
	ErrUploadFailed = errors.New("upload failed")
)

// EntryError represents an error from a content-entry operation.
type EntryError struct {
	Collection string
	ID         uuid.UUID
	Op         string
	Err        error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s operation %s failed for %s: %v", e.Collection, e.Op, e.ID, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// StorageError represents an error from a blob store operation.
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
