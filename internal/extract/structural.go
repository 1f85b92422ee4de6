// Package extract assembles plain text from a parsed PDF's content
// streams and decides whether that text is good enough to skip OCR.
package extract

import (
	"strings"

	"docpipe/internal/logger"
	"docpipe/internal/pdfdoc"
)

// PageSource enumerates a parsed document's text runs. It is the subset
// of pdfdoc.ParsedPDF the structural extractor needs.
type PageSource interface {
	NumPages() int
	PageRuns(page int) ([]pdfdoc.TextRun, error)
}

// Structural reconstructs plain text from the document's content streams.
//
// Pages are walked in order. Within a page, each run is appended in
// stream order: a run carrying an end-of-line marker contributes its text
// plus a newline (with trailing whitespace trimmed first), any other run
// contributes its text plus a single space. Pages are joined with a blank
// line. The result is NUL-stripped and trimmed, and may be empty for
// image-only documents.
//
// A page whose runs cannot be parsed contributes nothing; the error is
// logged as a warning and extraction continues, since the OCR fallback
// can still recover such pages.
func Structural(src PageSource) string {
	log := logger.WithComponent("structural")

	pages := make([]string, 0, src.NumPages())
	for page := 1; page <= src.NumPages(); page++ {
		runs, err := src.PageRuns(page)
		if err != nil {
			log.Warn().Err(err).Int("page", page).Msg("skipping unparseable page")
			runs = nil
		}
		pages = append(pages, assemblePage(runs))
	}

	return Sanitize(strings.Join(pages, "\n\n"))
}

func assemblePage(runs []pdfdoc.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		if run.EOL {
			b.WriteString(strings.TrimRight(run.Text, " \t"))
			b.WriteByte('\n')
		} else {
			b.WriteString(run.Text)
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}
