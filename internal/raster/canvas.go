// Package raster manages the drawing surfaces used as intermediate
// buffers between page rendering and OCR.
//
// Surfaces hold multi-megabyte pixel buffers, so their lifecycle is
// explicit: every surface acquired from a Factory is destroyed exactly
// once, and Destroy drops the backing buffer immediately instead of
// waiting for the garbage collector to notice it.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Surface is an in-memory drawing surface backed by an RGBA buffer.
type Surface struct {
	img *image.RGBA
}

// Factory creates, resets and destroys drawing surfaces. Implementations
// must tolerate Destroy on every code path: each Create is matched by
// exactly one Destroy.
type Factory interface {
	// Create allocates a w×h surface.
	Create(w, h int) *Surface

	// Reset re-dimensions the surface and fills it with white, the
	// substrate color OCR expects under rendered page content.
	Reset(s *Surface, w, h int)

	// Destroy releases the surface's pixel buffer.
	Destroy(s *Surface)
}

// RGBAFactory is the default Factory.
type RGBAFactory struct{}

// NewFactory returns the default surface factory.
func NewFactory() Factory {
	return RGBAFactory{}
}

// Create allocates a w×h surface.
func (RGBAFactory) Create(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Reset re-dimensions the surface and fills it with white.
func (RGBAFactory) Reset(s *Surface, w, h int) {
	if s.img == nil || s.img.Bounds().Dx() != w || s.img.Bounds().Dy() != h {
		s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
}

// Destroy releases the surface's pixel buffer so the memory is eligible
// for reclamation immediately.
func (RGBAFactory) Destroy(s *Surface) {
	if s.img != nil {
		s.img.Pix = nil
		s.img = nil
	}
}

// Draw scales src onto the whole surface.
func (s *Surface) Draw(src image.Image) {
	xdraw.ApproxBiLinear.Scale(s.img, s.img.Bounds(), src, src.Bounds(), xdraw.Over, nil)
}

// EncodePNG serializes the surface to a compressed PNG buffer.
func (s *Surface) EncodePNG() ([]byte, error) {
	if s.img == nil {
		return nil, fmt.Errorf("raster: encode destroyed surface")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, fmt.Errorf("raster: encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
