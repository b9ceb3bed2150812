// Package trafilatura provides a websum.Reducer that extracts only the
// main article content of a page, dropping navigation, footers, and other
// boilerplate along with scripts and styles.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/websum"
	websumgoquery "github.com/fwojciec/websum/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Reducer implements websum.Reducer at compile time.
var _ websum.Reducer = (*Reducer)(nil)

// Reducer wraps go-trafilatura main-content extraction.
type Reducer struct {
	minLength int
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithMinTextLength sets the minimum length of reduced text, in bytes.
func WithMinTextLength(n int) Option {
	return func(r *Reducer) {
		r.minLength = n
	}
}

// NewReducer creates a new article Reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		minLength: websumgoquery.DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce extracts the main content text of the page. Pages where no
// article content can be identified fail with ENOCONTENT.
func (r *Reducer) Reduce(html string) (*websum.ReducedContent, error) {
	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return nil, websum.Errorf(websum.ENOCONTENT, "content extraction failed: %v", err)
	}

	text := websumgoquery.CollapseWhitespace(result.ContentText)
	if len(text) < r.minLength {
		return nil, websum.Errorf(websum.ENOCONTENT,
			"page yielded %d bytes of article text (minimum %d)", len(text), r.minLength)
	}

	return &websum.ReducedContent{Text: text}, nil
}
