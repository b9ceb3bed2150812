package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/websum"
)

// Ensure LoggingReducer implements websum.Reducer.
var _ websum.Reducer = (*LoggingReducer)(nil)

// LoggingReducer wraps a Reducer with reduction logging. The logged content
// digest makes repeated runs over an unchanged page recognizable.
type LoggingReducer struct {
	next   websum.Reducer
	logger *slog.Logger
}

// NewLoggingReducer creates a new LoggingReducer.
func NewLoggingReducer(next websum.Reducer, logger *slog.Logger) *LoggingReducer {
	return &LoggingReducer{next: next, logger: logger}
}

// Reduce delegates to the wrapped reducer and logs sizes, digest, and
// duration.
func (r *LoggingReducer) Reduce(html string) (*websum.ReducedContent, error) {
	begin := time.Now()
	content, err := r.next.Reduce(html)
	if err != nil {
		r.logger.Error("reduce",
			"in_bytes", len(html),
			"err", websum.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Info("reduce",
		"in_bytes", len(html),
		"out_bytes", len(content.Text),
		"digest", fmt.Sprintf("%016x", xxhash.Sum64String(content.Text)),
		"duration", time.Since(begin),
	)
	return content, nil
}
