// Package tesseract is the local OCR backend. It links against libtesseract
// and leptonica through gosseract.
package tesseract

import (
	"context"
	"image"

	"github.com/otiai10/gosseract/v2"

	"docsearch/internal/ocr"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "eng"

// Engine runs Tesseract. A gosseract client is not safe for concurrent use,
// so one is created per call.
type Engine struct {
	language string
}

func New(language string) *Engine {
	if language == "" {
		language = DefaultLanguage
	}
	return &Engine{language: language}
}

// Language reports the tessdata language the engine loads.
func (e *Engine) Language() string { return e.language }

func (e *Engine) Recognize(_ context.Context, img image.Image) (string, error) {
	data, err := ocr.EncodePNG(img)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", ocr.Wrap("SetLanguage", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", ocr.Wrap("SetImage", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", ocr.Wrap("Text", err)
	}
	return text, nil
}
