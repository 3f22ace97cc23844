// Package provider selects the OCR backend named in configuration.
package provider

import (
	"context"
	"fmt"

	"docsearch/internal/config"
	"docsearch/internal/ocr"
	"docsearch/internal/ocr/tesseract"
	"docsearch/internal/ocr/vision"
)

const (
	Tesseract = "tesseract"
	Vision    = "vision"
)

// New builds the backend selected by cfg.Provider. An empty provider means
// Tesseract.
func New(ctx context.Context, cfg config.OCRConfig) (ocr.Engine, error) {
	switch cfg.Provider {
	case "", Tesseract:
		return tesseract.New(cfg.Language), nil
	case Vision:
		return vision.New(ctx, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown OCR provider %q", cfg.Provider)
	}
}
