package ocr

import (
	"context"
	"image"
	"math"
	"strings"

	"docpipe/internal/extract"
	"docpipe/internal/logger"
	"docpipe/internal/raster"
)

const (
	// DefaultScale is the rasterization oversampling factor. Rendering
	// at 2x trades memory for noticeably better recognition on small
	// print.
	DefaultScale = 2.0

	// DefaultPageCap bounds OCR cost on huge documents.
	DefaultPageCap = 50
)

// PageRenderer is the subset of pdfdoc.ParsedPDF the fallback needs.
type PageRenderer interface {
	NumPages() int
	PageSize(page int) (w, h float64, err error)
	Render(page int, scale float64) (image.Image, error)
}

// Fallback rasterizes a document's pages and recognizes them one at a
// time. Pages are processed sequentially so at most one raster surface
// is alive, and each surface is destroyed before its page's OCR call.
type Fallback struct {
	Engine  Engine
	Factory raster.Factory

	// Scale overrides DefaultScale when positive.
	Scale float64

	// PageCap overrides DefaultPageCap when positive.
	PageCap int
}

// Run performs OCR over the document using the given language pack and
// returns the concatenated page texts, blank-line separated in page
// order. The result may be empty when recognition finds nothing.
func (f *Fallback) Run(ctx context.Context, doc PageRenderer, language string) (string, error) {
	log := logger.WithComponent("ocr-fallback")

	scale := f.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	pageCap := f.PageCap
	if pageCap <= 0 {
		pageCap = DefaultPageCap
	}

	pages := doc.NumPages()
	if pages > pageCap {
		log.Warn().Int("pages", pages).Int("cap", pageCap).Msg("capping OCR page count")
		pages = pageCap
	}

	var results []string
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return "", WrapOCRError("Run", ErrContextCanceled, err.Error())
		}

		imageData, err := f.rasterizePage(doc, page, scale)
		if err != nil {
			return "", err
		}

		text, err := f.Engine.Recognize(ctx, imageData, language)
		if err != nil {
			return "", err
		}

		log.Debug().Int("page", page).Int("chars", len(text)).Msg("page recognized")
		if text != "" {
			results = append(results, text)
		}
	}

	return extract.Sanitize(strings.Join(results, "\n\n")), nil
}

// rasterizePage renders one page into a factory surface and serializes
// it to PNG. The surface is destroyed before this function returns, so
// no surface outlives its page's processing.
func (f *Fallback) rasterizePage(doc PageRenderer, page int, scale float64) (_ []byte, err error) {
	const op = "RasterizePage"

	w, h, err := doc.PageSize(page)
	if err != nil {
		return nil, WrapOCRError(op, err, "page viewport")
	}

	surface := f.Factory.Create(int(math.Ceil(w*scale)), int(math.Ceil(h*scale)))
	defer f.Factory.Destroy(surface)

	f.Factory.Reset(surface, int(math.Ceil(w*scale)), int(math.Ceil(h*scale)))

	img, err := doc.Render(page, scale)
	if err != nil {
		return nil, WrapOCRError(op, err, "rendering page")
	}
	surface.Draw(img)

	data, err := surface.EncodePNG()
	if err != nil {
		return nil, WrapOCRError(op, err, "serializing surface")
	}
	return data, nil
}
