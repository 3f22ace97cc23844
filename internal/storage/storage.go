package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUpload marks a failed object-store upload. It is never surfaced to HTTP
// callers; the file link degrades to an empty string instead.
var ErrUpload = errors.New("storage upload failed")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 if unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo identifies a stored object.
type ObjectInfo struct {
	Key string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// ObjectURL returns the durable URL of the object stored under key.
	ObjectURL(key string) string
}

// unavailable is the Storage used when the object store could not be
// configured at boot. Every upload fails so links degrade to "".
type unavailable struct {
	reason error
}

// Unavailable returns a Storage whose uploads always fail with reason.
func Unavailable(reason error) Storage {
	return unavailable{reason: reason}
}

func (u unavailable) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, u.reason
}

func (u unavailable) ObjectURL(string) string { return "" }
