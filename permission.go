package websum

import "context"

// PermissionDecision records whether a page may be fetched and why.
// It is derived once per request and immutable afterward.
type PermissionDecision struct {
	// Allowed reports whether the target path may be fetched.
	Allowed bool

	// Reason is a human-readable explanation of the decision, naming the
	// matched robots.txt rule when the path is disallowed.
	Reason string
}

// PermissionChecker decides whether a URL may be scraped.
type PermissionChecker interface {
	// Check fetches the target origin's robots.txt and evaluates whether
	// the URL's path is allowed for the pipeline's user-agent token.
	// A missing robots.txt means no restriction. Transient retrieval
	// failures (network errors, server errors) return EPERMCHECK rather
	// than a guessed decision.
	Check(ctx context.Context, url string) (*PermissionDecision, error)
}
