// Package openai implements websum.Summarizer using the OpenAI chat
// completions API (or any compatible endpoint via a base URL override).
package openai

import (
	"context"
	"errors"

	"github.com/fwojciec/websum"
	"github.com/openai/openai-go"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultMaxInputLen is the leading-character budget for reduced content.
// Content beyond it is clipped before prompt construction.
const DefaultMaxInputLen = 100000

// maxCompletionTokens bounds the model's reply. The fixed schema fits
// comfortably within it.
const maxCompletionTokens = 1000

// Ensure Summarizer implements websum.Summarizer at compile time.
var _ websum.Summarizer = (*Summarizer)(nil)

// Summarizer produces structured page analyses via OpenAI chat completions.
type Summarizer struct {
	client      *openai.Client
	model       string
	maxInputLen int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel sets the chat model. Defaults to DefaultModel.
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
func NewSummarizer(client *openai.Client, opts ...Option) *Summarizer {
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

// Summarize sends the reduced content to the model and parses the reply
// strictly against the result schema. A single call per request.
func (s *Summarizer) Summarize(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
	if content == nil || content.Text == "" {
		return nil, websum.Errorf(websum.EINVALID, "reduced content required")
	}

	prompt := websum.BuildUserPrompt(content.Clipped(s.maxInputLen))

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(s.model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(websum.SystemPrompt),
			openai.UserMessage(prompt),
		}),
		Temperature: openai.F(0.0),
		MaxTokens:   openai.F(int64(maxCompletionTokens)),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, websum.Errorf(websum.EAPI, "openai request failed with HTTP %d: %v", apierr.StatusCode, err)
		}
		return nil, websum.Errorf(websum.EAPI, "openai request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, websum.Errorf(websum.EAPI, "openai returned no choices")
	}

	return websum.ParseAnalysis([]byte(resp.Choices[0].Message.Content))
}
