package gemini

import (
	"context"
	"fmt"
	"time"

	pkghttp "tweet-insights-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Generate runs a single-prompt, non-streaming completion.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateContent runs a non-streaming completion with system instruction, history and options.
	GenerateContent(ctx context.Context, req GenerateRequest) (string, error)
	// StreamGenerateContent streams text deltas to onDelta in the order the API emits them.
	// A non-nil error from onDelta stops the stream and is returned.
	StreamGenerateContent(ctx context.Context, req GenerateRequest, onDelta func(text string) error) error
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	return &geminiImpl{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
