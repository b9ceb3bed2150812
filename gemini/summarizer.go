// Package gemini implements websum.Summarizer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/websum"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultMaxInputLen is the leading-character budget for reduced content.
const DefaultMaxInputLen = 100000

// maxOutputTokens bounds the model's reply.
const maxOutputTokens = 1000

// Ensure Summarizer implements websum.Summarizer at compile time.
var _ websum.Summarizer = (*Summarizer)(nil)

// Summarizer produces structured page analyses via the Gemini API.
type Summarizer struct {
	client      *genai.Client
	model       string
	maxInputLen int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithMaxInputLen sets the leading-character budget for reduced content.
// Defaults to DefaultMaxInputLen.
func WithMaxInputLen(n int) Option {
	return func(s *Summarizer) {
		s.maxInputLen = n
	}
}

// NewSummarizer creates a new Summarizer using the given client.
func NewSummarizer(client *genai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{
		client:      client,
		model:       DefaultModel,
		maxInputLen: DefaultMaxInputLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize sends the reduced content to Gemini and parses the reply
// strictly against the result schema. A single call per request.
func (s *Summarizer) Summarize(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
	if content == nil || content.Text == "" {
		return nil, websum.Errorf(websum.EINVALID, "reduced content required")
	}

	prompt := websum.BuildUserPrompt(content.Clipped(s.maxInputLen))

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, websum.Errorf(websum.EAPI, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, websum.Errorf(websum.EAPI, "gemini returned nil result")
	}

	return websum.ParseAnalysis([]byte(result.Text()))
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature zero keeps replies deterministic for unchanged input; the
// JSON response type stops the model from wrapping its reply in prose.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: websum.SystemPrompt}},
		},
		Temperature:      &temp,
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
	}
}
