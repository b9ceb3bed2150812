package websum

// ReducedContent is the visible text remaining after stripping non-content
// markup from a fetched page.
type ReducedContent struct {
	Text string
}

// Clipped returns at most n runes of the leading content. Lead content is
// assumed most representative, so truncation keeps the head of the text.
func (c *ReducedContent) Clipped(n int) string {
	if n <= 0 {
		return c.Text
	}
	runes := 0
	for i := range c.Text {
		if runes == n {
			return c.Text[:i]
		}
		runes++
	}
	return c.Text
}

// Reducer extracts visible text from raw HTML, discarding non-content
// elements such as scripts and styles.
type Reducer interface {
	// Reduce parses the HTML best-effort (malformed markup must not fail),
	// removes non-content subtrees, and returns the collapsed visible text.
	// Returns ENOCONTENT when the remaining text is empty or below the
	// implementation's minimum length.
	Reduce(html string) (*ReducedContent, error)
}
