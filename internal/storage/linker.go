package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"docsearch/internal/model"
)

// FileLinker stores an uploaded file and returns a durable link to it.
type FileLinker interface {
	Link(ctx context.Context, fileName string, r io.Reader, size int64) model.Result[string]
}

type objectLinker struct {
	store  Storage
	prefix string
}

// NewFileLinker returns a FileLinker that namespaces every key under prefix.
func NewFileLinker(store Storage, prefix string) FileLinker {
	return &objectLinker{store: store, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object key used for fileName.
func (l *objectLinker) Key(fileName string) string {
	base := filepath.Base(filepath.ToSlash(fileName))
	if l.prefix == "" {
		return base
	}
	return path.Join(l.prefix, base)
}

// Link never fails: any store error is reported as a degraded result.
func (l *objectLinker) Link(ctx context.Context, fileName string, r io.Reader, size int64) model.Result[string] {
	key := l.Key(fileName)
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := l.store.Put(ctx, key, r, PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": fileName},
	})
	if err != nil {
		return model.Degraded[string](fmt.Errorf("%w: %s: %v", ErrUpload, key, err))
	}
	return model.Ok(l.store.ObjectURL(info.Key))
}
