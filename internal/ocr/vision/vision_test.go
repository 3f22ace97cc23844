package vision

import (
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"

	"docsearch/internal/ocr"
)

func TestTextFromResponse(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		text, err := textFromResponse(&visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{
				FullTextAnnotation: &visionpb.TextAnnotation{Text: "Invoice 42\n"},
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Invoice 42\n", text)
	})

	t.Run("blank page", func(t *testing.T) {
		text, err := textFromResponse(&visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{}},
		})
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("per image error", func(t *testing.T) {
		_, err := textFromResponse(&visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{
				Error: &status.Status{Code: 3, Message: "Bad image data."},
			}},
		})
		assert.ErrorIs(t, err, ocr.ErrEngine)
		assert.ErrorContains(t, err, "Bad image data.")
	})

	t.Run("no responses", func(t *testing.T) {
		_, err := textFromResponse(&visionpb.BatchAnnotateImagesResponse{})
		assert.ErrorIs(t, err, ocr.ErrEngine)
	})
}
