package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/websum"
	"github.com/fwojciec/websum/mock"
	websumslog "github.com/fwojciec/websum/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("logs the decision", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.PermissionChecker{
			CheckFn: func(ctx context.Context, url string) (*websum.PermissionDecision, error) {
				return &websum.PermissionDecision{Allowed: true, Reason: "no robots.txt policy"}, nil
			},
		}

		checker := websumslog.NewLoggingChecker(inner, logger)
		decision, err := checker.Check(context.Background(), "http://example.com/page")

		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		output := buf.String()
		assert.Contains(t, output, "permission check")
		assert.Contains(t, output, "url=http://example.com/page")
		assert.Contains(t, output, "allowed=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.PermissionChecker{
			CheckFn: func(ctx context.Context, url string) (*websum.PermissionDecision, error) {
				return nil, websum.Errorf(websum.EPERMCHECK, "robots.txt returned HTTP 503")
			},
		}

		checker := websumslog.NewLoggingChecker(inner, logger)
		_, err := checker.Check(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "HTTP 503")
	})
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*websum.RawDocument, error) {
				return &websum.RawDocument{Body: "<html>content</html>", StatusCode: 200}, nil
			},
		}

		fetcher := websumslog.NewLoggingFetcher(inner, logger)
		doc, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", doc.Body)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*websum.RawDocument, error) {
				return nil, websum.Errorf(websum.EFETCH, "network error")
			},
		}

		fetcher := websumslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("delegates Close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}

		logger, _ := testLogger()
		fetcher := websumslog.NewLoggingFetcher(inner, logger)

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

func TestLoggingReducer_Reduce(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and a stable digest", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.Reducer{
			ReduceFn: func(html string) (*websum.ReducedContent, error) {
				return &websum.ReducedContent{Text: "Hello"}, nil
			},
		}

		reducer := websumslog.NewLoggingReducer(inner, logger)
		content, err := reducer.Reduce("<h1>Hello</h1>")

		require.NoError(t, err)
		assert.Equal(t, "Hello", content.Text)
		output := buf.String()
		assert.Contains(t, output, "reduce")
		assert.Contains(t, output, "in_bytes=14")
		assert.Contains(t, output, "out_bytes=5")
		assert.Contains(t, output, "digest=")
	})

	t.Run("logs the same digest for the same content", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Reducer{
			ReduceFn: func(html string) (*websum.ReducedContent, error) {
				return &websum.ReducedContent{Text: "stable"}, nil
			},
		}

		logger1, buf1 := testLogger()
		_, err := websumslog.NewLoggingReducer(inner, logger1).Reduce("x")
		require.NoError(t, err)

		logger2, buf2 := testLogger()
		_, err = websumslog.NewLoggingReducer(inner, logger2).Reduce("x")
		require.NoError(t, err)

		assert.Equal(t, digestField(t, buf1.String()), digestField(t, buf2.String()))
	})
}

func digestField(t *testing.T, output string) string {
	t.Helper()
	for _, field := range bytes.Fields([]byte(output)) {
		if bytes.HasPrefix(field, []byte("digest=")) {
			return string(field)
		}
	}
	t.Fatalf("no digest field in %q", output)
	return ""
}

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs input size and category", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
				return &websum.AnalysisResult{Category: "blog", Summary: "S", Subjects: []string{"a", "b"}}, nil
			},
		}

		summarizer := websumslog.NewLoggingSummarizer(inner, logger)
		_, err := summarizer.Summarize(context.Background(), &websum.ReducedContent{Text: "Hello"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "in_bytes=5")
		assert.Contains(t, output, "category=blog")
		assert.Contains(t, output, "subjects=2")
	})

	t.Run("logs errors without content", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, content *websum.ReducedContent) (*websum.AnalysisResult, error) {
				return nil, websum.Errorf(websum.EAPI, "quota exceeded")
			},
		}

		summarizer := websumslog.NewLoggingSummarizer(inner, logger)
		_, err := summarizer.Summarize(context.Background(), &websum.ReducedContent{Text: "secret page text"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "quota exceeded")
		assert.NotContains(t, output, "secret page text")
	})
}
