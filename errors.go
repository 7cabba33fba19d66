package imgs2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrDecode        = errors.New("failed to decode image")
	ErrAppendPage    = errors.New("failed to append page")
	ErrNoPages       = errors.New("document has no pages")
	ErrFinalized     = errors.New("document already written")
	ErrWriteDocument = errors.New("failed to write PDF document")

	// Options validation errors.
	ErrInvalidDPI         = errors.New("dpi must be a positive finite number")
	ErrInvalidScaleBounds = errors.New("scale bounds must be between 1 and 2147483647 pixels per axis")
)
