package standings

import "errors"

// Sentinel error kinds for standings lookups and options.
var (
	ErrUnknownSortMode = errors.New("unknown sort mode")
	ErrNotFound        = errors.New("standing not found")
)
