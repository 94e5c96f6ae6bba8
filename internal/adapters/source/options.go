package source

import (
	"net/http"
	"time"
)

// Default loader configuration constants.
const (
	defaultTimeout  = 10 * time.Second
	defaultMaxBytes = 32 << 20
)

// Option applies a configuration option to a loader.
type Option func(*options)

type options struct {
	timeout  time.Duration
	maxBytes int64
	client   *http.Client
}

// WithTimeout bounds a single load.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxBytes caps the size of the loaded text.
func WithMaxBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}
