// Package pdfdoc opens raw PDF bytes into a page-addressable document.
//
// Two backends are combined: MuPDF (via go-fitz) supplies the page count,
// page geometry and rasterization; ledongthuc/pdf supplies the positioned
// text runs used for structural extraction. A ParsedPDF holds native
// MuPDF buffers and must be closed on every exit path.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// Common document errors
var (
	// ErrClosed is returned when a ParsedPDF is used after Close.
	ErrClosed = errors.New("parsed PDF is closed")

	// ErrPageOutOfRange is returned for page numbers outside 1..NumPages.
	ErrPageOutOfRange = errors.New("page number out of range")
)

// TextRun is one chunk of a page's content stream in reading order.
// EOL marks runs that end a line; following runs start a new one.
type TextRun struct {
	Text string
	EOL  bool
}

// ParsedPDF is an opened, page-addressable PDF document.
type ParsedPDF struct {
	fz     *fitz.Document
	reader *pdf.Reader
	pages  int
	closed bool
}

// Open parses the given PDF bytes. The returned document must be closed.
func Open(data []byte) (*ParsedPDF, error) {
	fz, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("pdfdoc: open document: %w", err)
	}

	// The structural reader is best-effort: a document MuPDF can render
	// may still trip the stricter text-run parser. Rasterization and OCR
	// remain available in that case.
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		reader = nil
	}

	return &ParsedPDF{
		fz:     fz,
		reader: reader,
		pages:  fz.NumPage(),
	}, nil
}

// NumPages returns the document's page count.
func (d *ParsedPDF) NumPages() int {
	return d.pages
}

// PageSize returns the page's width and height in points (1-based page).
func (d *ParsedPDF) PageSize(page int) (w, h float64, err error) {
	if err := d.checkPage(page); err != nil {
		return 0, 0, err
	}
	bounds, err := d.fz.Bound(page - 1)
	if err != nil {
		return 0, 0, fmt.Errorf("pdfdoc: bounds of page %d: %w", page, err)
	}
	return float64(bounds.Dx()), float64(bounds.Dy()), nil
}

// Render rasterizes the page (1-based) at the given oversampling scale,
// where scale 1.0 is 72 DPI.
func (d *ParsedPDF) Render(page int, scale float64) (image.Image, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	img, err := d.fz.ImageDPI(page-1, 72*scale)
	if err != nil {
		return nil, fmt.Errorf("pdfdoc: render page %d: %w", page, err)
	}
	return img, nil
}

// Close releases the document's native buffers. It is safe to call more
// than once.
func (d *ParsedPDF) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.reader = nil
	return d.fz.Close()
}

func (d *ParsedPDF) checkPage(page int) error {
	if d.closed {
		return ErrClosed
	}
	if page < 1 || page > d.pages {
		return fmt.Errorf("pdfdoc: %w: %d of %d", ErrPageOutOfRange, page, d.pages)
	}
	return nil
}
