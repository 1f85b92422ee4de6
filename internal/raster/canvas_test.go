package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestCreateDrawEncode(t *testing.T) {
	f := NewFactory()
	s := f.Create(20, 10)
	defer f.Destroy(s)

	src := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	f.Reset(s, 20, 10)
	s.Draw(src)

	data, err := s.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding produced PNG: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 20 || got.Dy() != 10 {
		t.Errorf("encoded bounds = %v, want 20x10", got)
	}
}

func TestResetFillsWhite(t *testing.T) {
	f := NewFactory()
	s := f.Create(4, 4)
	defer f.Destroy(s)

	s.img.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	f.Reset(s, 4, 4)

	r, g, b, a := s.img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("Reset() left pixel %v, want opaque white", s.img.At(1, 1))
	}
}

func TestResetRedimensions(t *testing.T) {
	f := NewFactory()
	s := f.Create(4, 4)
	defer f.Destroy(s)

	f.Reset(s, 8, 6)
	if got := s.img.Bounds(); got.Dx() != 8 || got.Dy() != 6 {
		t.Errorf("Reset() bounds = %v, want 8x6", got)
	}
}

func TestDestroyReleasesBuffer(t *testing.T) {
	f := NewFactory()
	s := f.Create(4, 4)
	f.Destroy(s)

	if s.img != nil {
		t.Error("Destroy() left the backing image attached")
	}
	if _, err := s.EncodePNG(); err == nil {
		t.Error("EncodePNG() on destroyed surface succeeded, want error")
	}

	// Destroy is tolerated twice; deferred cleanup paths rely on it.
	f.Destroy(s)
}
