package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/config"
	"docsearch/internal/ocr/tesseract"
)

func TestNew(t *testing.T) {
	for _, name := range []string{"", Tesseract} {
		e, err := New(context.Background(), config.OCRConfig{Provider: name, Language: "deu"})
		require.NoError(t, err)
		require.IsType(t, &tesseract.Engine{}, e)
		assert.Equal(t, "deu", e.(*tesseract.Engine).Language())
	}

	_, err := New(context.Background(), config.OCRConfig{Provider: "abbyy"})
	assert.ErrorContains(t, err, "unknown OCR provider")
}
