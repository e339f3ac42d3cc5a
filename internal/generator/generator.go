// Package generator wraps the hosted language models that draft answers to
// visitor questions.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cecoladevelopment/site-backend/internal/config"
)

// Fixed sampling parameters for every backend.
const (
	MaxOutputTokens = 300
	Temperature     = 0.7
)

const (
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.5-flash-lite"
)

var (
	ErrMissingCredential = errors.New("generation credential not configured")
	ErrUnknownProvider   = errors.New("unknown generation provider")
	ErrEmptyResponse     = errors.New("no text generated")
)

// Result is the outcome of one generation call: either usable text or the
// reason there is none.
type Result struct {
	Text string
	Err  error
}

// Succeeded wraps generated text. Blank text is reported as a failure.
func Succeeded(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Failed(ErrEmptyResponse)
	}
	return Result{Text: text}
}

func Failed(err error) Result {
	if err == nil {
		err = ErrEmptyResponse
	}
	return Result{Err: err}
}

// Usable reports whether the result carries non-blank generated text.
func (r Result) Usable() bool {
	return r.Err == nil && strings.TrimSpace(r.Text) != ""
}

// Generator drafts a reply to a single visitor query.
type Generator interface {
	Generate(ctx context.Context, query string) Result
	Name() string
	Close() error
}

// New builds the backend selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("%w: provider %s", ErrMissingCredential, cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderAnthropic, "":
		model := cfg.Model
		if model == "" {
			model = DefaultAnthropicModel
		}
		gen, err := NewAnthropicGenerator(apiKey, model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderGemini:
		model := cfg.Model
		if model == "" {
			model = DefaultGeminiModel
		}
		gen, err := NewGeminiGenerator(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

// joinText joins every text block with a blank line and trims the result.
func joinText(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}
