package websum

import "context"

// RawDocument is the unmodified HTTP response body of a fetched page.
// It is created by a Fetcher and consumed by a Reducer.
type RawDocument struct {
	// Body is the response body as text.
	Body string

	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// Fetcher retrieves raw page bodies from URLs.
type Fetcher interface {
	// Fetch issues a single GET request for the URL and returns the raw
	// document. Any non-2xx status, empty body, timeout, or connection
	// failure returns EFETCH. No retries; failure is reported, not masked.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*RawDocument, error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
