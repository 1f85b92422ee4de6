// Package ocr recognizes text on rasterized page images.
//
// The engine wraps Tesseract via gosseract and requires the tesseract
// native library to be installed. Language packs (traineddata bundles)
// are resolved from a local tessdata directory and downloaded from a
// remote pack source on first use of a language.
//
// On macOS, install the engine via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install libtesseract-dev
package ocr

import "context"

// Engine recognizes text on one page image at a time.
type Engine interface {
	// Recognize runs OCR over a compressed raster image (PNG, JPEG,
	// TIFF) using the language pack for the given ISO 639-3 code.
	// The returned text is NUL-stripped and trimmed, possibly empty.
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}

// EngineConfig holds settings for the Tesseract engine.
type EngineConfig struct {
	// TessdataDir is the local directory holding *.traineddata packs.
	TessdataDir string

	// PackSourceURL is the remote base URL language packs are fetched
	// from when missing locally, e.g. the tessdata_fast repository.
	PackSourceURL string
}
