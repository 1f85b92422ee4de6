package models

import "time"

// Document is a record describing one stored PDF and the text extracted
// from it. Records are owned by the record store; the extraction pipeline
// reads them and conditionally updates ExtractedText and Language.
type Document struct {
	// ID is the record identifier in the store.
	ID string `firestore:"-" json:"id"`

	// Title is a human-readable name for the document.
	Title string `firestore:"title" json:"title,omitempty"`

	// PDFURL is the remote location of the PDF bytes, if the PDF is
	// fetched over HTTP.
	PDFURL string `firestore:"pdf_url" json:"pdf_url,omitempty"`

	// PDFPath is a local filesystem path to the PDF, used instead of
	// PDFURL when the bytes are already on disk.
	PDFPath string `firestore:"pdf_path" json:"pdf_path,omitempty"`

	// ExtractedText is the plain text recovered from the PDF, or empty
	// if extraction has not run yet.
	ExtractedText string `firestore:"extracted_text" json:"extracted_text,omitempty"`

	// Language is the document's ISO 639-3 language code, or empty if
	// unknown. Once set it is never overwritten, only back-filled.
	Language string `firestore:"language" json:"language,omitempty"`

	// UpdatedAt is when the record was last written.
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at,omitempty"`
}

// HasPDF reports whether the document references PDF bytes at all.
func (d *Document) HasPDF() bool {
	return d.PDFURL != "" || d.PDFPath != ""
}

// ExtractionResult is the pipeline's output for one document.
// It is immutable once produced.
type ExtractionResult struct {
	// Text is the extracted plain text, NUL-stripped and trimmed.
	Text string `json:"text"`

	// Language is the resolved ISO 639-3 language code.
	Language string `json:"language"`

	// UsedOCR reports whether rasterization plus OCR produced the text,
	// as opposed to structural extraction or the cached record.
	UsedOCR bool `json:"used_ocr"`
}
