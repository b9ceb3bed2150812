package websum

import "context"

// Summarizer produces a structured analysis of reduced page content by
// calling a language-model completion endpoint.
type Summarizer interface {
	// Summarize sends the content to the model with a fixed instruction
	// and parses the reply strictly against the result schema. A single
	// call per request; no retries. Returns EAPI when the provider call
	// fails and ESCHEMA when the reply does not conform.
	Summarize(ctx context.Context, content *ReducedContent) (*AnalysisResult, error)
}
