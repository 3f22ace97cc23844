// Package ocr defines the page recognition contract shared by the OCR
// backends.
//
// Backends live in subpackages: tesseract runs the local engine through
// gosseract (cgo) and vision calls Google Cloud Vision document text
// detection. Both receive the page encoded as PNG and return the engine's
// text verbatim; no retries are attempted. Package provider picks one from
// configuration. Consumers depend only on this package, so they build
// without the Tesseract headers.
package ocr

import (
	"bytes"
	"context"
	"image"
	"image/png"
)

// Engine recognizes the text of a single page image.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// EncodePNG serializes a page for a backend.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, Wrap("EncodePNG", err)
	}
	return buf.Bytes(), nil
}
