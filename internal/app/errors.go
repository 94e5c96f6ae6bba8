package service

import "errors"

// Sentinel errors returned by the service.
var (
	ErrNoLoader      = errors.New("no source loader configured")
	ErrNoDataset     = errors.New("no dataset loaded")
	ErrEmptyGroupKey = errors.New("group key is empty")
)
