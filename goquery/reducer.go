// Package goquery provides the default plain-text implementation of
// websum.Reducer. It strips non-content elements from a page and extracts
// the remaining visible text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/websum"
)

// nonContentSelector matches elements whose subtrees carry no visible text.
const nonContentSelector = "script, style, noscript"

// DefaultMinTextLength is the minimum number of bytes of visible text a
// page must yield. Any non-empty text passes by default.
const DefaultMinTextLength = 1

// Ensure Reducer implements websum.Reducer at compile time.
var _ websum.Reducer = (*Reducer)(nil)

// Reducer extracts visible text from HTML documents.
type Reducer struct {
	minLength int
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithMinTextLength sets the minimum length of reduced text, in bytes.
// Pages yielding less fail with ENOCONTENT.
func WithMinTextLength(n int) Option {
	return func(r *Reducer) {
		r.minLength = n
	}
}

// NewReducer creates a new Reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		minLength: DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce parses the HTML, removes script/style subtrees, and returns the
// concatenated visible text with whitespace collapsed. Malformed markup is
// tolerated; the underlying parser builds a best-effort tree.
func (r *Reducer) Reduce(html string) (*websum.ReducedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, websum.Errorf(websum.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentSelector).Remove()

	text := CollapseWhitespace(doc.Text())
	if len(text) < r.minLength {
		return nil, websum.Errorf(websum.ENOCONTENT,
			"page yielded %d bytes of visible text (minimum %d); the page may be client-rendered", len(text), r.minLength)
	}

	return &websum.ReducedContent{Text: text}, nil
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
