package mock

import (
	"context"

	"github.com/fwojciec/websum"
)

var _ websum.PermissionChecker = (*PermissionChecker)(nil)

// PermissionChecker is a mock implementation of websum.PermissionChecker.
type PermissionChecker struct {
	CheckFn func(ctx context.Context, url string) (*websum.PermissionDecision, error)
}

func (c *PermissionChecker) Check(ctx context.Context, url string) (*websum.PermissionDecision, error) {
	return c.CheckFn(ctx, url)
}
