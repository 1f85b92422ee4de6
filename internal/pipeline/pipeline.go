// Package pipeline orchestrates document text extraction.
//
// A run moves through a fixed sequence of stages: cache check against
// the record store, structural extraction from the PDF's content
// streams, the meaningful-text gate, and, only when that gate rejects,
// language resolution followed by page rasterization and OCR with a
// second language resolution over the recognized text. The sanitized result is persisted
// back to the record store, back-filling the record's language hint when
// it had none. Runs are idempotent: a record whose stored text already
// passes the gate short-circuits without touching the PDF again.
package pipeline

import (
	"context"
	"image"
	"os"

	"github.com/rs/zerolog"

	"docpipe/internal/extract"
	"docpipe/internal/lang"
	"docpipe/internal/logger"
	"docpipe/internal/ocr"
	"docpipe/internal/pdfdoc"
	"docpipe/internal/raster"
	"docpipe/internal/resource"
	"docpipe/internal/store"
	"docpipe/pkg/models"
)

// Fetcher resolves a remote PDF reference to raw bytes.
type Fetcher interface {
	FetchPDF(ctx context.Context, url string) ([]byte, error)
}

// Parsed is an opened PDF as the pipeline consumes it: text runs for
// structural extraction, geometry and rasterization for OCR, and an
// explicit Close that must run on every exit path.
type Parsed interface {
	NumPages() int
	PageRuns(page int) ([]pdfdoc.TextRun, error)
	PageSize(page int) (w, h float64, err error)
	Render(page int, scale float64) (image.Image, error)
	Close() error
}

// Options tune one extraction run.
type Options struct {
	// LanguageOverride, when set, wins over the record's stored language
	// hint for OCR pack selection and for back-filling.
	LanguageOverride string

	// Force re-extracts even when the stored text passes the quality
	// gate.
	Force bool
}

// Deps are the pipeline's collaborators. Heavy backends arrive as
// already-constructed dependency objects (built once at process start)
// rather than ambient globals, so tests substitute them freely.
type Deps struct {
	Store      store.DocumentStore
	Fetcher    Fetcher
	Open       func(data []byte) (Parsed, error)
	Engine     *resource.Loader[ocr.Engine]
	Factory    raster.Factory
	Classifier extract.Classifier
	Resolver   lang.Resolver

	// OCRScale and OCRPageCap override the ocr package defaults when
	// positive.
	OCRScale   float64
	OCRPageCap int
}

// Service runs the extraction pipeline.
type Service struct {
	deps Deps
	log  zerolog.Logger
}

// New creates a pipeline service from its collaborators.
func New(deps Deps) *Service {
	if deps.Open == nil {
		deps.Open = func(data []byte) (Parsed, error) { return pdfdoc.Open(data) }
	}
	if deps.Factory == nil {
		deps.Factory = raster.NewFactory()
	}
	return &Service{
		deps: deps,
		log:  logger.WithComponent("pipeline"),
	}
}

// Extract runs the pipeline for the record with the given ID.
func (s *Service) Extract(ctx context.Context, documentRef string, opts Options) (*models.ExtractionResult, error) {
	doc, err := s.deps.Store.Get(ctx, documentRef)
	if err != nil {
		return nil, &PipelineError{Op: "Lookup", DocumentID: documentRef, Err: err}
	}
	return s.ExtractDocument(ctx, doc, opts)
}

// ExtractDocument runs the pipeline for an already-loaded record.
//
// On persistence failure the computed result is returned together with
// the error: callers may still hand the text to the user, but must not
// report the run as successful.
func (s *Service) ExtractDocument(ctx context.Context, doc *models.Document, opts Options) (*models.ExtractionResult, error) {
	log := s.log.With().Str("document_id", doc.ID).Logger()

	// Cache check: a record whose stored text already passes the gate is
	// never recomputed unless forced.
	if !opts.Force && s.deps.Classifier.IsMeaningful(doc.ExtractedText) {
		log.Debug().Msg("returning cached extraction")
		return &models.ExtractionResult{
			Text:     doc.ExtractedText,
			Language: s.cachedLanguage(doc, opts),
			UsedOCR:  false,
		}, nil
	}

	data, err := s.loadBytes(ctx, doc)
	if err != nil {
		return nil, err
	}

	parsed, err := s.deps.Open(data)
	if err != nil {
		return nil, &PipelineError{Op: "Parse", DocumentID: doc.ID, Err: ErrParseFailed, Details: err.Error()}
	}
	defer parsed.Close()

	hint := opts.LanguageOverride
	if hint == "" {
		hint = doc.Language
	}

	structural := extract.Structural(parsed)
	outcome := s.deps.Classifier.Classify(structural)

	var text, language string
	usedOCR := false

	if outcome.Sufficient {
		text = outcome.Text
		language = s.deps.Resolver.Resolve(hint, structural)
		log.Info().Int("chars", len(text)).Msg("structural extraction sufficient")
	} else {
		log.Info().Int("chars", len(structural)).Msg("structural text insufficient, falling back to OCR")

		engine, err := s.deps.Engine.Get()
		if err != nil {
			return nil, &PipelineError{Op: "OCR", DocumentID: doc.ID, Err: err}
		}

		// First resolution picks the OCR pack; the structural text may
		// be too short to sample, leaving the hint or default in charge.
		language = s.deps.Resolver.Resolve(hint, structural)

		fallback := &ocr.Fallback{
			Engine:  engine,
			Factory: s.deps.Factory,
			Scale:   s.deps.OCRScale,
			PageCap: s.deps.OCRPageCap,
		}
		text, err = fallback.Run(ctx, parsed, language)
		if err != nil {
			return nil, &PipelineError{Op: "OCR", DocumentID: doc.ID, Err: err}
		}
		usedOCR = true

		// Second resolution: with OCR text available there is finally a
		// sample to detect against when no hint existed.
		language = s.deps.Resolver.Resolve(hint, text)
	}

	final := extract.Sanitize(text)
	if final == "" {
		return nil, &PipelineError{Op: "Sanitize", DocumentID: doc.ID, Err: ErrNoTextExtracted}
	}

	result := &models.ExtractionResult{Text: final, Language: language, UsedOCR: usedOCR}

	if doc.ID != "" {
		backfill := ""
		if doc.Language == "" {
			backfill = language
		}
		if err := s.deps.Store.UpdateExtraction(ctx, doc.ID, final, backfill); err != nil {
			log.Error().Err(err).Msg("persisting extraction failed")
			return result, &PipelineError{Op: "Persist", DocumentID: doc.ID, Err: ErrPersistFailed, Details: err.Error()}
		}
		log.Info().Bool("used_ocr", usedOCR).Str("language", language).Msg("extraction persisted")
	}

	return result, nil
}

// cachedLanguage picks the language reported on the cache-hit path.
func (s *Service) cachedLanguage(doc *models.Document, opts Options) string {
	if opts.LanguageOverride != "" {
		return s.deps.Resolver.Resolve(opts.LanguageOverride, "")
	}
	if doc.Language != "" {
		return doc.Language
	}
	return s.deps.Resolver.Resolve("", "")
}

// loadBytes resolves the record's byte source.
func (s *Service) loadBytes(ctx context.Context, doc *models.Document) ([]byte, error) {
	switch {
	case doc.PDFPath != "":
		data, err := os.ReadFile(doc.PDFPath)
		if err != nil {
			return nil, &PipelineError{Op: "Read", DocumentID: doc.ID, Err: ErrNoPDF, Details: err.Error()}
		}
		return data, nil
	case doc.PDFURL != "":
		data, err := s.deps.Fetcher.FetchPDF(ctx, doc.PDFURL)
		if err != nil {
			return nil, &PipelineError{Op: "Fetch", DocumentID: doc.ID, Err: err}
		}
		return data, nil
	default:
		return nil, &PipelineError{Op: "Fetch", DocumentID: doc.ID, Err: ErrNoPDF}
	}
}
