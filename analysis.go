package websum

import (
	"encoding/json"
	"strings"
)

// AnalysisRequest names a single page to analyze. It is created by the
// caller, consumed once by the pipeline, and discarded.
type AnalysisRequest struct {
	URL string `json:"url"`
}

// Validate returns an error if the request contains invalid fields.
func (r *AnalysisRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "target URL required")
	}
	return nil
}

// ContextualAnalysis holds the optional qualitative fields of a result.
// Unknown string fields are explicit nulls, never omitted, so consumers
// always see the full shape.
type ContextualAnalysis struct {
	Audience        *string  `json:"audience"`
	Tone            *string  `json:"tone"`
	Purpose         *string  `json:"purpose"`
	NotableFeatures []string `json:"notable_features"`
}

// AnalysisResult is the structured summary of a page. Subjects preserve the
// model's emission order.
type AnalysisResult struct {
	Category           string             `json:"category"`
	Summary            string             `json:"summary"`
	Subjects           []string           `json:"subjects"`
	ContextualAnalysis ContextualAnalysis `json:"contextual_analysis"`
}

// Validate returns an error if the result is missing required fields.
func (r *AnalysisResult) Validate() error {
	if r.Category == "" {
		return Errorf(ESCHEMA, "result category required")
	}
	if r.Summary == "" {
		return Errorf(ESCHEMA, "result summary required")
	}
	return nil
}

// Normalize replaces nil slices with empty ones so the result always
// marshals lists as [] rather than null.
func (r *AnalysisResult) Normalize() {
	if r.Subjects == nil {
		r.Subjects = []string{}
	}
	if r.ContextualAnalysis.NotableFeatures == nil {
		r.ContextualAnalysis.NotableFeatures = []string{}
	}
}

// requiredFields are the top-level keys every model reply must carry.
var requiredFields = []string{"category", "summary", "subjects", "contextual_analysis"}

// ParseAnalysis strictly parses a model reply into an AnalysisResult.
// The reply must be a single JSON object containing every required field
// with schema-conforming types. Markdown code fences around the object are
// tolerated since models wrap JSON output despite instructions to the
// contrary. Returns ESCHEMA on any violation.
func ParseAnalysis(data []byte) (*AnalysisResult, error) {
	text := trimCodeFence(string(data))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, Errorf(ESCHEMA, "model reply is not a JSON object: %v", err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, Errorf(ESCHEMA, "model reply missing required field %q", field)
		}
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, Errorf(ESCHEMA, "model reply does not match the result schema: %v", err)
	}
	result.Normalize()
	return &result, nil
}

// trimCodeFence strips a surrounding markdown code fence (``` or ```json)
// from a model reply, if present.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
