package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/websum"
)

// Ensure PermissionChecker implements websum.PermissionChecker.
var _ websum.PermissionChecker = (*PermissionChecker)(nil)

// PermissionChecker evaluates a site's robots.txt to decide whether a URL
// may be fetched. Every call re-fetches the policy; there is no cache
// across invocations.
type PermissionChecker struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	token     string
}

// CheckerOption configures a PermissionChecker.
type CheckerOption func(*PermissionChecker)

// WithCheckTimeout sets the timeout for the robots.txt request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithCheckTimeout(d time.Duration) CheckerOption {
	return func(c *PermissionChecker) {
		c.timeout = d
	}
}

// WithAgentToken sets the product token matched against robots.txt
// User-agent groups. Defaults to websum.UserAgentToken.
func WithAgentToken(token string) CheckerOption {
	return func(c *PermissionChecker) {
		c.token = token
	}
}

// NewPermissionChecker creates a new PermissionChecker.
func NewPermissionChecker(opts ...CheckerOption) *PermissionChecker {
	c := &PermissionChecker{
		timeout:   DefaultFetchTimeout,
		userAgent: websum.UserAgent,
		token:     websum.UserAgentToken,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Check fetches the robots.txt at the URL's origin and evaluates whether
// the URL's path is allowed for the checker's agent token.
//
// A client-error response (4xx) means the site publishes no policy and the
// decision is ALLOW. Server errors and transport failures return EPERMCHECK
// rather than a guessed decision.
func (c *PermissionChecker) Check(ctx context.Context, rawurl string) (*websum.PermissionDecision, error) {
	target, err := url.Parse(rawurl)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, websum.Errorf(websum.EINVALID, "invalid URL %q", rawurl)
	}

	robotsURL := target.Scheme + "://" + target.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, websum.Errorf(websum.EINVALID, "invalid robots.txt URL %q: %v", robotsURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, websum.Errorf(websum.EPERMCHECK, "robots.txt request for %s failed: %v", target.Host, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode <= 499:
		// Absence of a policy means no restriction.
		return &websum.PermissionDecision{
			Allowed: true,
			Reason:  fmt.Sprintf("no robots.txt policy (HTTP %d)", resp.StatusCode),
		}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, websum.Errorf(websum.EPERMCHECK, "robots.txt for %s returned HTTP %d", target.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, websum.Errorf(websum.EPERMCHECK, "reading robots.txt for %s failed: %v", target.Host, err)
	}

	path := target.EscapedPath()
	if path == "" {
		path = "/"
	}

	return evaluateRobots(string(body), c.token, path), nil
}

// robotsRule is a single Allow or Disallow directive.
type robotsRule struct {
	allow bool
	path  string
}

// robotsGroup is a set of rules applying to one or more agent tokens.
type robotsGroup struct {
	agents []string
	rules  []robotsRule
}

// evaluateRobots decides whether path is allowed for the given agent token
// under the parsed robots.txt body. Rules from the most specific matching
// agent groups apply; wildcard groups are the fallback. Within the
// applicable rules the longest matching path wins, with Allow winning ties,
// mirroring RFC 9309 precedence.
func evaluateRobots(body, token, path string) *websum.PermissionDecision {
	groups := parseRobots(body)

	rules := matchingRules(groups, token)
	if len(rules) == 0 {
		return &websum.PermissionDecision{
			Allowed: true,
			Reason:  fmt.Sprintf("no robots.txt rule for user-agent %q", token),
		}
	}

	var matched *robotsRule
	for i := range rules {
		rule := &rules[i]
		if !strings.HasPrefix(path, rule.path) {
			continue
		}
		if matched == nil ||
			len(rule.path) > len(matched.path) ||
			(len(rule.path) == len(matched.path) && rule.allow && !matched.allow) {
			matched = rule
		}
	}

	if matched == nil {
		return &websum.PermissionDecision{
			Allowed: true,
			Reason:  fmt.Sprintf("no robots.txt rule matches path %q", path),
		}
	}
	if matched.allow {
		return &websum.PermissionDecision{
			Allowed: true,
			Reason:  fmt.Sprintf("robots.txt allows path %q (rule Allow: %s)", path, matched.path),
		}
	}
	return &websum.PermissionDecision{
		Allowed: false,
		Reason:  fmt.Sprintf("robots.txt disallows path %q for user-agent %q (rule Disallow: %s)", path, token, matched.path),
	}
}

// matchingRules collects rules from groups naming the agent token, falling
// back to wildcard groups when no specific group matches.
func matchingRules(groups []robotsGroup, token string) []robotsRule {
	token = strings.ToLower(token)

	var specific, wildcard []robotsRule
	for _, g := range groups {
		for _, agent := range g.agents {
			if agent == "*" {
				wildcard = append(wildcard, g.rules...)
			} else if strings.HasPrefix(token, agent) {
				specific = append(specific, g.rules...)
			}
		}
	}

	if len(specific) > 0 {
		return specific
	}
	return wildcard
}

// parseRobots parses a robots.txt body into agent groups. Consecutive
// User-agent lines form a single group. Unknown directives and comments
// are ignored; parsing is best-effort.
func parseRobots(body string) []robotsGroup {
	var groups []robotsGroup
	var current *robotsGroup
	var lastWasAgent bool

	for _, line := range strings.Split(body, "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		directive, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		directive = strings.ToLower(strings.TrimSpace(directive))
		value = strings.TrimSpace(value)

		switch directive {
		case "user-agent":
			if current == nil || !lastWasAgent {
				groups = append(groups, robotsGroup{})
				current = &groups[len(groups)-1]
			}
			current.agents = append(current.agents, strings.ToLower(value))
			lastWasAgent = true
		case "disallow":
			if current == nil || value == "" {
				// An empty Disallow means everything is allowed.
				lastWasAgent = false
				continue
			}
			current.rules = append(current.rules, robotsRule{allow: false, path: value})
			lastWasAgent = false
		case "allow":
			if current == nil || value == "" {
				lastWasAgent = false
				continue
			}
			current.rules = append(current.rules, robotsRule{allow: true, path: value})
			lastWasAgent = false
		default:
			lastWasAgent = false
		}
	}

	return groups
}
