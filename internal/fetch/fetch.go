// Package fetch resolves a document's remote PDF reference to raw bytes.
//
// Failures are classified so the pipeline can distinguish "the PDF is
// gone" from transient network trouble: ErrNotFound, ErrBadStatus and
// ErrTransport all unwrap from the returned error.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var pdfMagic = []byte("%PDF")

// Client fetches PDF bytes over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a fetch client with the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetTimeout(timeout),
	}
}

// FetchPDF downloads the PDF at url and returns its raw bytes.
func (c *Client) FetchPDF(ctx context.Context, url string) ([]byte, error) {
	const op = "FetchPDF"

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{Op: op, URL: url, Err: ErrTransport, Details: err.Error()}
	}

	switch {
	case resp.StatusCode() == 404 || resp.StatusCode() == 410:
		return nil, &FetchError{Op: op, URL: url, Err: ErrNotFound}
	case !resp.IsSuccess():
		return nil, &FetchError{Op: op, URL: url, Err: ErrBadStatus,
			Details: fmt.Sprintf("status %d", resp.StatusCode())}
	}

	body := resp.Body()
	if !bytes.HasPrefix(body, pdfMagic) {
		return nil, &FetchError{Op: op, URL: url, Err: ErrNotPDF,
			Details: fmt.Sprintf("%d bytes without PDF header", len(body))}
	}

	return body, nil
}
