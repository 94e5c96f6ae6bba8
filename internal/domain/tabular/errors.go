package tabular

import "errors"

// Sentinel error kinds for this package.
var (
	ErrMultilineValue = errors.New("value spans multiple lines")
	ErrEmptyHeader    = errors.New("header has no columns")
)
