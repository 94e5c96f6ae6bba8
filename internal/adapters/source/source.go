// Package source loads the raw results text from a file or an HTTP URL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Kinds reported by Loader.Kind.
const (
	KindFile = "file"
	KindHTTP = "http"
)

// Loader fetches the complete source text.
type Loader interface {
	// Load returns the text, honoring ctx for cancellation.
	Load(ctx context.Context) (string, error)
	// Kind names the transport, used for metrics labels.
	Kind() string
	// Location is the path or URL being read.
	Location() string
}

// New returns a loader for location. Locations with an http or https scheme
// are fetched over HTTP; anything without a scheme (or file://) is a path.
func New(location string, opts ...Option) (Loader, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	o := options{
		timeout:  defaultTimeout,
		maxBytes: defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = &http.Client{}
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || isWindowsDrive(u.Scheme) {
		return &fileLoader{path: location, maxBytes: o.maxBytes}, nil
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return &httpLoader{url: location, opts: o}, nil
	case "file":
		return &fileLoader{path: u.Path, maxBytes: o.maxBytes}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, u.Scheme)
	}
}

// isWindowsDrive reports whether a parsed scheme is really a drive letter.
func isWindowsDrive(scheme string) bool {
	return len(scheme) == 1
}

type fileLoader struct {
	path     string
	maxBytes int64
}

func (l *fileLoader) Kind() string     { return KindFile }
func (l *fileLoader) Location() string { return l.path }

func (l *fileLoader) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	f, err := os.Open(l.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	text, err := readLimited(f, l.maxBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", l.path, err)
	}
	return text, nil
}

type httpLoader struct {
	url  string
	opts options
}

func (l *httpLoader) Kind() string     { return KindHTTP }
func (l *httpLoader) Location() string { return l.url }

func (l *httpLoader) Load(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.opts.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	// Always read the current table, never a cached copy.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.opts.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s: status %d", ErrFetch, l.url, resp.StatusCode)
	}

	text, err := readLimited(resp.Body, l.opts.maxBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", l.url, err)
	}
	return text, nil
}

// readLimited reads all of r, failing with ErrTooLarge past limit bytes.
func readLimited(r io.Reader, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return string(data), nil
}
