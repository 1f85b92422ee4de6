package pipeline

import (
	"time"

	"docpipe/internal/config"
	"docpipe/internal/extract"
	"docpipe/internal/fetch"
	"docpipe/internal/lang"
	"docpipe/internal/ocr"
	"docpipe/internal/raster"
	"docpipe/internal/resource"
	"docpipe/internal/store"
)

// NewFromConfig assembles a production pipeline: resty fetcher,
// MuPDF/ledongthuc document opener, and a lazily-initialized Tesseract
// engine whose first failure is cached for the process lifetime.
func NewFromConfig(cfg *config.Config, st store.DocumentStore) *Service {
	engineLoader := resource.NewLoader(func() (ocr.Engine, error) {
		return ocr.NewTesseractEngine(ocr.EngineConfig{
			TessdataDir:   cfg.TessdataDir,
			PackSourceURL: cfg.TessdataURL,
		})
	})

	return New(Deps{
		Store:      st,
		Fetcher:    fetch.New(time.Duration(cfg.FetchTimeoutSeconds) * time.Second),
		Engine:     engineLoader,
		Factory:    raster.NewFactory(),
		Classifier: extract.Classifier{LetterThreshold: cfg.MeaningfulLetterThreshold},
		Resolver: lang.Resolver{
			Default:   cfg.DefaultLanguage,
			SampleMin: cfg.DetectSampleMin,
			DetectMin: cfg.DetectMinLength,
		},
		OCRScale:   cfg.OCRScale,
		OCRPageCap: cfg.OCRPageCap,
	})
}
