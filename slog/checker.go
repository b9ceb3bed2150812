// Package slog provides logging decorators for the websum interfaces.
// Each decorator wraps an inner implementation and records timing and
// outcome without changing behavior.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websum"
)

// Ensure LoggingChecker implements websum.PermissionChecker.
var _ websum.PermissionChecker = (*LoggingChecker)(nil)

// LoggingChecker wraps a PermissionChecker with decision logging.
type LoggingChecker struct {
	next   websum.PermissionChecker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next websum.PermissionChecker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker and logs the decision.
func (c *LoggingChecker) Check(ctx context.Context, url string) (*websum.PermissionDecision, error) {
	begin := time.Now()
	decision, err := c.next.Check(ctx, url)
	if err != nil {
		c.logger.Error("permission check",
			"url", url,
			"err", websum.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	c.logger.Info("permission check",
		"url", url,
		"allowed", decision.Allowed,
		"reason", decision.Reason,
		"duration", time.Since(begin),
	)
	return decision, nil
}
