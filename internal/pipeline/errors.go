package pipeline

import (
	"errors"
	"fmt"
)

// Common pipeline errors
var (
	// ErrNoPDF is returned when the record references no PDF bytes at all.
	ErrNoPDF = errors.New("no PDF available for this document")

	// ErrParseFailed is returned when the PDF bytes cannot be opened as a
	// document; neither structural extraction nor OCR can run then.
	ErrParseFailed = errors.New("could not parse PDF document")

	// ErrNoTextExtracted is returned when both structural extraction and
	// OCR come back empty. Nothing is persisted in that case.
	ErrNoTextExtracted = errors.New("could not extract any text from document")

	// ErrPersistFailed is returned when the record store rejects the
	// extraction update. The computed result still accompanies it.
	ErrPersistFailed = errors.New("failed to persist extracted text")
)

// PipelineError wraps errors with additional context about the
// extraction failure.
type PipelineError struct {
	// Op is the stage that failed (e.g., "Fetch", "OCR", "Persist").
	Op string

	// DocumentID is the record involved, if any.
	DocumentID string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	msg := fmt.Sprintf("pipeline: %s failed", e.Op)
	if e.DocumentID != "" {
		msg = fmt.Sprintf("pipeline: %s failed for document %s", e.Op, e.DocumentID)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %v", msg, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *PipelineError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
