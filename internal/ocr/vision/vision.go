// Package vision is the Google Cloud Vision OCR backend.
package vision

import (
	"context"
	"errors"
	"image"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"docsearch/internal/ocr"
)

// Engine uses DOCUMENT_TEXT_DETECTION.
type Engine struct {
	client *visionapi.ImageAnnotatorClient
}

// New creates a Vision backend. With an empty credentialsFile the
// application default credentials are used.
func New(ctx context.Context, credentialsFile string) (*Engine, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, ocr.Wrap("NewImageAnnotatorClient", err)
	}
	return &Engine{client: client}, nil
}

func (e *Engine) Recognize(ctx context.Context, img image.Image) (string, error) {
	data, err := ocr.EncodePNG(img)
	if err != nil {
		return "", err
	}

	resp, err := e.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: data},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}},
		}},
	})
	if err != nil {
		return "", ocr.Wrap("BatchAnnotateImages", err)
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *visionpb.BatchAnnotateImagesResponse) (string, error) {
	if len(resp.GetResponses()) == 0 {
		return "", ocr.Wrap("BatchAnnotateImages", errors.New("empty response"))
	}
	r := resp.GetResponses()[0]
	if r.GetError() != nil {
		return "", ocr.Wrap("BatchAnnotateImages", errors.New(r.GetError().GetMessage()))
	}
	// A page without text has no annotation; that is not a failure.
	return r.GetFullTextAnnotation().GetText(), nil
}

func (e *Engine) Close() error {
	return e.client.Close()
}
