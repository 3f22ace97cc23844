package ocr

import (
	"errors"
	"fmt"
)

// ErrEngine is matched by every failure raised by an OCR backend.
var ErrEngine = errors.New("ocr engine error")

// Error wraps a backend failure with the operation that raised it.
type Error struct {
	// Op is the operation that failed (e.g., "SetImage", "BatchAnnotateImages").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrEngine.
func (e *Error) Is(target error) bool {
	return target == ErrEngine
}

// Wrap attributes err to op. Errors that already carry an op are returned
// unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var ocrErr *Error
	if errors.As(err, &ocrErr) {
		return err
	}
	return &Error{Op: op, Err: err}
}
