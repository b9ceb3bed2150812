package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/websum"
	"github.com/fwojciec/websum/gemini"
	websumgoquery "github.com/fwojciec/websum/goquery"
	"github.com/fwojciec/websum/htmltomarkdown"
	websumhttp "github.com/fwojciec/websum/http"
	websumopenai "github.com/fwojciec/websum/openai"
	"github.com/fwojciec/websum/pipeline"
	websumslog "github.com/fwojciec/websum/slog"
	"github.com/fwojciec/websum/trafilatura"
	"github.com/google/uuid"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider  string        `default:"openai" enum:"openai,gemini" help:"Model provider (openai, gemini)"`
	Model     string        `help:"Model name override"`
	APIKey    string        `help:"Provider API key (falls back to OPENAI_API_KEY or GEMINI_API_KEY)"`
	BaseURL   string        `help:"OpenAI-compatible API base URL override"`
	Reduce    string        `default:"text" enum:"text,markdown,article" help:"Content reduction mode (text, markdown, article)"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Timeout per HTTP request"`
	MaxInput  int           `default:"100000" help:"Maximum reduced-content characters sent to the model"`
	MinLength int           `default:"1" help:"Minimum visible-text length required for analysis"`
	Verbose   bool          `short:"v" help:"Log pipeline stages to stderr"`
	URL       string        `arg:"" required:"" help:"Page URL to analyze"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("websum"),
		kong.Description("Summarize a web page as fixed-schema JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	analyzer, cleanup, err := buildAnalyzer(ctx, cli, stderr, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := analyzer.Run(ctx, cli.URL)
	if err != nil {
		if encodeErr := writeJSON(stdout, websum.NewAnalysisError(err)); encodeErr != nil {
			return encodeErr
		}
		return err
	}

	return writeJSON(stdout, result)
}

// newLogger returns a stderr logger carrying a per-run ID. Without
// --verbose only warnings and errors surface.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString())
}

// buildAnalyzer wires the pipeline stages from CLI configuration. The
// returned cleanup releases fetcher resources.
func buildAnalyzer(ctx context.Context, cli *CLI, stderr io.Writer, logger *slog.Logger) (*pipeline.Analyzer, func(), error) {
	checker := websumhttp.NewPermissionChecker(
		websumhttp.WithCheckTimeout(cli.Timeout),
	)
	fetcher := websumhttp.NewFetcher(
		websumhttp.WithTimeout(cli.Timeout),
	)

	reducer, err := buildReducer(cli)
	if err != nil {
		fetcher.Close()
		return nil, nil, err
	}

	summarizer, err := buildSummarizer(ctx, cli, stderr)
	if err != nil {
		fetcher.Close()
		return nil, nil, err
	}

	analyzer := &pipeline.Analyzer{
		Permissions: websumslog.NewLoggingChecker(checker, logger),
		Fetcher:     websumslog.NewLoggingFetcher(fetcher, logger),
		Reducer:     websumslog.NewLoggingReducer(reducer, logger),
		Summarizer:  websumslog.NewLoggingSummarizer(summarizer, logger),
	}

	return analyzer, func() { _ = fetcher.Close() }, nil
}

func buildReducer(cli *CLI) (websum.Reducer, error) {
	switch cli.Reduce {
	case "markdown":
		return htmltomarkdown.NewReducer(htmltomarkdown.WithMinTextLength(cli.MinLength)), nil
	case "article":
		return trafilatura.NewReducer(trafilatura.WithMinTextLength(cli.MinLength)), nil
	case "text":
		return websumgoquery.NewReducer(websumgoquery.WithMinTextLength(cli.MinLength)), nil
	default:
		return nil, fmt.Errorf("unknown reduce mode %q", cli.Reduce)
	}
}

func buildSummarizer(ctx context.Context, cli *CLI, stderr io.Writer) (websum.Summarizer, error) {
	switch cli.Provider {
	case "gemini":
		apiKey := cli.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		opts := []gemini.Option{gemini.WithMaxInputLen(cli.MaxInput)}
		if cli.Model != "" {
			opts = append(opts, gemini.WithModel(cli.Model))
		}
		return gemini.NewSummarizer(client, opts...), nil

	default: // "openai"
		apiKey := cli.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}

		// MaxRetries zero: a single call per request, failures surface.
		clientOpts := []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		}
		if cli.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(cli.BaseURL))
		}
		client := openai.NewClient(clientOpts...)

		opts := []websumopenai.Option{websumopenai.WithMaxInputLen(cli.MaxInput)}
		if cli.Model != "" {
			opts = append(opts, websumopenai.WithModel(cli.Model))
		}
		return websumopenai.NewSummarizer(client, opts...), nil
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
