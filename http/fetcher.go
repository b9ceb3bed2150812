// Package http provides HTTP-based implementations of websum.Fetcher and
// websum.PermissionChecker for retrieving pages and evaluating robots.txt
// policies.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/websum"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements websum.Fetcher at compile time.
var _ websum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page bodies using plain HTTP requests.
// It does not execute JavaScript; heavily client-rendered pages surface
// downstream as insufficient content.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
// Defaults to websum.UserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: websum.UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a single GET request for the URL and returns the raw
// document. No retries; any failure is reported as EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*websum.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, websum.Errorf(websum.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, websum.Errorf(websum.EFETCH, "request for %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, websum.Errorf(websum.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, websum.Errorf(websum.EFETCH, "reading body of %s failed: %v", url, err)
	}
	if len(body) == 0 {
		return nil, websum.Errorf(websum.EFETCH, "empty response body for %s", url)
	}

	return &websum.RawDocument{
		Body:       string(body),
		StatusCode: resp.StatusCode,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
