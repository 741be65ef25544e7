package ports

import "errors"

var (
	// ErrInvalidSize is returned for size expressions outside <number>[KB|MB].
	ErrInvalidSize = errors.New("invalid size expression")
	// ErrSizeExceeded is returned when the skeleton alone is larger than the target.
	ErrSizeExceeded = errors.New("minimum file size exceeds target")
	// ErrBackendUnavailable is returned when the mail-store backend cannot run.
	ErrBackendUnavailable = errors.New("mail-store backend unavailable")
	// ErrUnsupportedType is returned for unknown format identifiers.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrEntryExists is returned when the archive already holds the padding entry.
	ErrEntryExists = errors.New("padding entry already exists")
)
