package ocr

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	cause := errors.New("tessdata not found")
	err := Wrap("SetLanguage", cause)

	assert.ErrorIs(t, err, ErrEngine)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ocr: SetLanguage failed: tessdata not found", err.Error())

	// already wrapped errors keep their original op
	outer := Wrap("Text", fmt.Errorf("page 2: %w", err))
	var ocrErr *Error
	require.ErrorAs(t, outer, &ocrErr)
	assert.Equal(t, "SetLanguage", ocrErr.Op)

	assert.NoError(t, Wrap("Text", nil))
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(image.NewGray(image.Rect(0, 0, 3, 2)))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

// Consumers of Engine must compile without libtesseract, so this package
// may not pull in any backend SDK.
func TestPackageHasNoBackendImports(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		f, err := parser.ParseFile(fset, name, src, parser.ImportsOnly)
		require.NoError(t, err)

		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			assert.NotEqual(t, "C", path, name)
			assert.NotContains(t, path, "gosseract", name)
			assert.NotContains(t, path, "cloud.google.com", name)
		}
	}
}
