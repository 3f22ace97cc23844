// Package raster turns uploaded files into page images ready for OCR.
//
// PDFs are opened with MuPDF (via go-fitz) and rendered one page at a time.
// Anything else is decoded as a single image using the registered image
// decoders: PNG, JPEG and GIF from the standard library plus BMP, TIFF and
// WebP from golang.org/x/image.
package raster

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when a file cannot be decoded as its declared kind.
var ErrDecode = errors.New("decode error")

// Kind is the declared type of an uploaded file.
type Kind int

const (
	// KindImage is a single raster image; it yields exactly one page.
	KindImage Kind = iota
	// KindDocument is a multi-page container (PDF).
	KindDocument
)

func (k Kind) String() string {
	if k == KindDocument {
		return "document"
	}
	return "image"
}

// KindFromName classifies a file by extension: ".pdf" in any case is a
// document, everything else is an image.
func KindFromName(name string) Kind {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return KindDocument
	}
	return KindImage
}

// Document is an opened file that can be rendered page by page.
type Document interface {
	NumPages() int
	// Render rasterizes page i, 0 <= i < NumPages().
	Render(i int) (image.Image, error)
	Close() error
}

// Rasterizer opens files stored on local disk.
type Rasterizer interface {
	Open(ctx context.Context, path string, kind Kind) (Document, error)
}
