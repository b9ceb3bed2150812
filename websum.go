// Package websum turns a single web page into a fixed-schema JSON summary.
// It checks the target site's robots.txt, fetches the page over HTTP,
// strips non-content markup, and asks a language model for a structured
// analysis of the remaining text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, openai/).
package websum

// UserAgent is the full User-Agent header sent with every outbound request.
const UserAgent = "websum/1.0 (+https://github.com/fwojciec/websum)"

// UserAgentToken is the product token matched against robots.txt
// User-agent groups.
const UserAgentToken = "websum"
