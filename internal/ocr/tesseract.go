package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/otiai10/gosseract/v2"

	"docpipe/internal/extract"
	"docpipe/internal/logger"
)

// TesseractEngine implements Engine on a local Tesseract installation.
type TesseractEngine struct {
	tessdataDir string
	packSource  string
	http        *resty.Client

	// packMu serializes pack downloads; Recognize itself creates one
	// gosseract client per call, so concurrent recognitions are safe.
	packMu sync.Mutex
}

// NewTesseractEngine verifies the Tesseract backend and prepares the
// tessdata directory. Failure here means OCR cannot run on this host at
// all; callers cache it rather than retrying per request.
func NewTesseractEngine(cfg EngineConfig) (*TesseractEngine, error) {
	const op = "NewTesseractEngine"

	if cfg.TessdataDir == "" {
		return nil, WrapOCRError(op, ErrNotConfigured, "no tessdata directory configured")
	}
	if err := os.MkdirAll(cfg.TessdataDir, 0o755); err != nil {
		return nil, WrapOCRError(op, ErrNotConfigured,
			fmt.Sprintf("cannot create tessdata directory %s: %v", cfg.TessdataDir, err))
	}

	// A throwaway client proves the native library is loadable.
	client := gosseract.NewClient()
	if err := client.Close(); err != nil {
		return nil, WrapOCRError(op, ErrNotConfigured, fmt.Sprintf("tesseract unavailable: %v", err))
	}

	return &TesseractEngine{
		tessdataDir: cfg.TessdataDir,
		packSource:  cfg.PackSourceURL,
		http:        resty.New().SetTimeout(2 * time.Minute),
	}, nil
}

// Recognize runs OCR over one page image.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	const op = "Recognize"

	if err := ctx.Err(); err != nil {
		return "", WrapOCRError(op, ErrContextCanceled, err.Error())
	}
	if err := e.EnsurePack(ctx, language); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetTessdataPrefix(e.tessdataDir); err != nil {
		return "", WrapOCRError(op, err, "setting tessdata prefix")
	}
	if err := client.SetLanguage(language); err != nil {
		return "", WrapOCRError(op, err, fmt.Sprintf("setting language %q", language))
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", WrapOCRError(op, err, "setting page image")
	}

	text, err := client.Text()
	if err != nil {
		return "", WrapOCRError(op, ErrRecognitionFailed, err.Error())
	}

	return extract.Sanitize(text), nil
}

// EnsurePack makes the language's traineddata pack available locally,
// downloading it from the remote pack source when missing.
func (e *TesseractEngine) EnsurePack(ctx context.Context, language string) error {
	const op = "EnsurePack"

	e.packMu.Lock()
	defer e.packMu.Unlock()

	packPath := filepath.Join(e.tessdataDir, language+".traineddata")
	if _, err := os.Stat(packPath); err == nil {
		return nil
	}
	if e.packSource == "" {
		return WrapOCRError(op, ErrPackUnavailable,
			fmt.Sprintf("%s missing and no pack source configured", language))
	}

	log := logger.WithComponent("ocr")
	url := fmt.Sprintf("%s/%s.traineddata", e.packSource, language)
	log.Info().Str("language", language).Str("url", url).Msg("downloading language pack")

	resp, err := e.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return WrapOCRError(op, ErrPackUnavailable, err.Error())
	}
	if !resp.IsSuccess() {
		return WrapOCRError(op, ErrPackUnavailable,
			fmt.Sprintf("pack source returned status %d for %s", resp.StatusCode(), language))
	}

	tmp := packPath + ".partial"
	if err := os.WriteFile(tmp, resp.Body(), 0o644); err != nil {
		return WrapOCRError(op, err, "writing language pack")
	}
	if err := os.Rename(tmp, packPath); err != nil {
		return WrapOCRError(op, err, "installing language pack")
	}

	log.Info().Str("language", language).Int("bytes", len(resp.Body())).Msg("language pack installed")
	return nil
}
