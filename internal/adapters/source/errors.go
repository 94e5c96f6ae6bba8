package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrEmptyLocation = errors.New("source location is empty")
	ErrUnsupported   = errors.New("unsupported source scheme")
	ErrRead          = errors.New("read source failed")
	ErrFetch         = errors.New("fetch source failed")
	ErrTooLarge      = errors.New("source exceeds size limit")
)
