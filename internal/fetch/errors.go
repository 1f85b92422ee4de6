package fetch

import (
	"errors"
	"fmt"
)

// Common fetch errors
var (
	// ErrNotFound is returned when the remote server reports that the PDF
	// does not exist (HTTP 404 or 410).
	ErrNotFound = errors.New("PDF not found at the given URL")

	// ErrBadStatus is returned for any other non-OK HTTP response.
	ErrBadStatus = errors.New("unexpected HTTP status fetching PDF")

	// ErrTransport is returned when the request could not complete at all
	// (DNS failure, connection refused, timeout). Callers may retry.
	ErrTransport = errors.New("network error fetching PDF")

	// ErrNotPDF is returned when the fetched bytes do not look like a PDF.
	ErrNotPDF = errors.New("fetched content is not a PDF document")
)

// FetchError wraps errors with additional context about the fetch failure.
type FetchError struct {
	// Op is the operation that failed (e.g., "FetchPDF").
	Op string

	// URL is the location that was being fetched.
	URL string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("fetch: %s %s failed: %s: %v", e.Op, e.URL, e.Details, e.Err)
	}
	return fmt.Sprintf("fetch: %s %s failed: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *FetchError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
