package mock

import (
	"context"

	"github.com/fwojciec/websum"
)

var _ websum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of websum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error)
}

func (s *Summarizer) Summarize(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
	return s.SummarizeFn(ctx, content)
}
