// Package htmltomarkdown provides a websum.Reducer that renders the page
// as Markdown instead of flat text, preserving headings, lists, and links
// for the model.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/websum"
	websumgoquery "github.com/fwojciec/websum/goquery"
)

// Ensure Reducer implements websum.Reducer at compile time.
var _ websum.Reducer = (*Reducer)(nil)

// Reducer converts a page to Markdown after stripping non-content elements.
type Reducer struct {
	conv      *converter.Converter
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

// NewReducer creates a new Markdown Reducer.
func NewReducer(opts ...Option) *Reducer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	r := &Reducer{
		conv:      conv,
		minLength: websumgoquery.DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce strips script/style subtrees and converts the remaining tree to
// Markdown.
func (r *Reducer) Reduce(html string) (*websum.ReducedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, websum.Errorf(websum.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("script, style, noscript").Remove()

	stripped, err := doc.Html()
	if err != nil {
		return nil, websum.Errorf(websum.EINTERNAL, "failed to render stripped HTML: %v", err)
	}

	markdown, err := r.conv.ConvertString(stripped)
	if err != nil {
		return nil, websum.Errorf(websum.ENOCONTENT, "markdown conversion failed: %v", err)
	}

	markdown = strings.TrimSpace(markdown)
	if len(markdown) < r.minLength {
		return nil, websum.Errorf(websum.ENOCONTENT,
			"page yielded %d bytes of markdown (minimum %d); the page may be client-rendered", len(markdown), r.minLength)
	}

	return &websum.ReducedContent{Text: markdown}, nil
}
