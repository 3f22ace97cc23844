package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gen2brain/go-fitz"
)

const (
	// DefaultDPI matches the native PDF resolution of 72 points per inch.
	DefaultDPI = 72

	// DefaultMaxPixels caps a single decoded page at roughly 200 MB of RGBA.
	DefaultMaxPixels = 50_000_000
)

type rasterizer struct {
	dpi       float64
	maxPixels int64
}

// New returns a Rasterizer rendering PDF pages at dpi. Images and pages
// whose width×height exceeds maxPixels are refused with ErrDecode before any
// pixel buffer is allocated.
func New(dpi float64, maxPixels int64) Rasterizer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &rasterizer{dpi: dpi, maxPixels: maxPixels}
}

func (r *rasterizer) Open(_ context.Context, path string, kind Kind) (Document, error) {
	if kind == KindDocument {
		doc, err := fitz.New(path)
		if err != nil {
			return nil, fmt.Errorf("%w: open pdf: %v", ErrDecode, err)
		}
		return &pdfDocument{doc: doc, dpi: r.dpi, maxPixels: r.maxPixels}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image header: %v", ErrDecode, err)
	}
	if err := checkPixels(int64(cfg.Width), int64(cfg.Height), r.maxPixels); err != nil {
		return nil, fmt.Errorf("%w: image: %v", ErrDecode, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrDecode, err)
	}
	return singleImage{img: img}, nil
}

func checkPixels(w, h, limit int64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty dimensions %dx%d", w, h)
	}
	if w > limit/h {
		return fmt.Errorf("%dx%d exceeds %d pixels", w, h, limit)
	}
	return nil
}

type pdfDocument struct {
	doc       *fitz.Document
	dpi       float64
	maxPixels int64
}

func (d *pdfDocument) NumPages() int { return d.doc.NumPage() }

func (d *pdfDocument) Render(i int) (image.Image, error) {
	// Bound is in points (1/72 in); ImageDPI scales it by dpi/72.
	b, err := d.doc.Bound(i)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d bounds: %v", ErrDecode, i+1, err)
	}
	scale := d.dpi / DefaultDPI
	w := int64(float64(b.Dx())*scale + 0.5)
	h := int64(float64(b.Dy())*scale + 0.5)
	if err := checkPixels(w, h, d.maxPixels); err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrDecode, i+1, err)
	}

	img, err := d.doc.ImageDPI(i, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("%w: render page %d: %v", ErrDecode, i+1, err)
	}
	return img, nil
}

func (d *pdfDocument) Close() error { return d.doc.Close() }

type singleImage struct {
	img image.Image
}

func (s singleImage) NumPages() int { return 1 }

func (s singleImage) Render(i int) (image.Image, error) {
	if i != 0 {
		return nil, fmt.Errorf("page %d out of range", i+1)
	}
	return s.img, nil
}

func (s singleImage) Close() error { return nil }
