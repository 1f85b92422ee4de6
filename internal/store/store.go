// Package store persists document records for the extraction pipeline.
//
// The pipeline treats the store as an external collaborator: it reads a
// record's previously extracted text for the idempotent cache check and
// writes back the extraction outcome. Two implementations are provided,
// a Firestore-backed store for production and an in-memory store for
// tests and store-less CLI runs.
package store

import (
	"context"
	"errors"
	"fmt"

	"docpipe/pkg/models"
)

// Common store errors
var (
	// ErrNotFound is returned when no record exists for the given ID.
	ErrNotFound = errors.New("document record not found")

	// ErrWriteFailed is returned when a record update could not be persisted.
	ErrWriteFailed = errors.New("document record write failed")
)

// DocumentStore is the record store consumed by the pipeline.
type DocumentStore interface {
	// Get returns the record with the given ID.
	Get(ctx context.Context, id string) (*models.Document, error)

	// UpdateExtraction writes the extracted text for a record. When
	// language is non-empty it is written as well; callers pass it only
	// for records whose stored language hint is still blank.
	UpdateExtraction(ctx context.Context, id, text, language string) error

	// ListPending returns up to limit records that have a PDF reference
	// but no extracted text yet.
	ListPending(ctx context.Context, limit int) ([]*models.Document, error)
}

// StoreError wraps errors with additional context about the store failure.
type StoreError struct {
	// Op is the operation that failed (e.g., "Get", "UpdateExtraction").
	Op string

	// ID is the record involved, if any.
	ID string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("store: %s %s failed: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
