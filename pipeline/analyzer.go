// Package pipeline sequences the permission check, fetch, reduce, and
// summarize stages into a single analysis run.
package pipeline

import (
	"context"

	"github.com/fwojciec/websum"
)

// Analyzer drives one analysis from URL to structured result. Stages run
// strictly sequentially and fail fast; there are no retries and no state
// shared between runs, so independent runs may execute concurrently.
type Analyzer struct {
	Permissions websum.PermissionChecker
	Fetcher     websum.Fetcher
	Reducer     websum.Reducer
	Summarizer  websum.Summarizer
}

// Run executes the pipeline for a single URL. The first failing stage
// terminates the run; a denied permission check short-circuits before any
// page fetch is issued.
func (a *Analyzer) Run(ctx context.Context, url string) (*websum.AnalysisResult, error) {
	req := &websum.AnalysisRequest{URL: url}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	decision, err := a.Permissions.Check(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, websum.Errorf(websum.EPERMISSION, "%s", decision.Reason)
	}

	doc, err := a.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	content, err := a.Reducer.Reduce(doc.Body)
	if err != nil {
		return nil, err
	}

	return a.Summarizer.Summarize(ctx, content)
}
