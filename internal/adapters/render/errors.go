package render

import "errors"

// ErrUnknownFormat is returned by New for a format it cannot produce.
var ErrUnknownFormat = errors.New("unknown output format")
