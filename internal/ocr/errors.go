package ocr

import (
	"errors"
	"fmt"
)

// Common OCR processing errors
var (
	// ErrNotConfigured is returned when the OCR backend is unavailable on
	// this host. This is a fatal configuration problem, not a retryable
	// condition, and it is cached for the life of the process.
	ErrNotConfigured = errors.New("OCR is not configured on this server")

	// ErrPackUnavailable is returned when a language pack is missing
	// locally and could not be retrieved from the remote pack source.
	ErrPackUnavailable = errors.New("OCR language pack unavailable")

	// ErrRecognitionFailed is returned when the engine fails on an image.
	ErrRecognitionFailed = errors.New("OCR recognition failed")

	// ErrContextCanceled is returned when processing is canceled via context.
	ErrContextCanceled = errors.New("OCR processing was canceled")
)

// OCRError wraps errors with additional context about the OCR failure.
type OCRError struct {
	// Op is the operation that failed (e.g., "Recognize", "EnsurePack").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *OCRError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *OCRError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *OCRError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapOCRError wraps an error as an OCRError if it isn't already one.
func WrapOCRError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var ocrErr *OCRError
	if errors.As(err, &ocrErr) {
		return err // Already wrapped
	}

	return &OCRError{Op: op, Err: err, Details: details}
}
