package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websum"
)

// Ensure LoggingSummarizer implements websum.Summarizer.
var _ websum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with completion-call logging.
type LoggingSummarizer struct {
	next   websum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next websum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs input size and
// duration. Content itself is never logged.
func (s *LoggingSummarizer) Summarize(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
	begin := time.Now()
	result, err := s.next.Summarize(ctx, content)
	if err != nil {
		s.logger.Error("summarize",
			"in_bytes", contentLen(content),
			"err", websum.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("summarize",
		"in_bytes", contentLen(content),
		"category", result.Category,
		"subjects", len(result.Subjects),
		"duration", time.Since(begin),
	)
	return result, nil
}

func contentLen(content *websum.ReducedContent) int {
	if content == nil {
		return 0
	}
	return len(content.Text)
}
