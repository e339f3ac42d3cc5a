package generator

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// AnthropicGenerator drafts replies with Claude through langchaingo.
type AnthropicGenerator struct {
	llm   llms.Model
	model string
}

func NewAnthropicGenerator(apiKey, model, baseURL string) (*AnthropicGenerator, error) {
	opts := []anthropic.Option{
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}

	llm, err := anthropic.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anthropic client: %w", err)
	}
	return newAnthropicGenerator(llm, model), nil
}

func newAnthropicGenerator(llm llms.Model, model string) *AnthropicGenerator {
	return &AnthropicGenerator{llm: llm, model: model}
}

func (a *AnthropicGenerator) Name() string {
	return "anthropic"
}

func (a *AnthropicGenerator) Close() error {
	return nil
}

func (a *AnthropicGenerator) Generate(ctx context.Context, query string) Result {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, query),
	}

	resp, err := a.llm.GenerateContent(ctx, messages,
		llms.WithModel(a.model),
		llms.WithMaxTokens(MaxOutputTokens),
		llms.WithTemperature(Temperature),
	)
	if err != nil {
		return Failed(fmt.Errorf("failed to generate content: %w", err))
	}
	if resp == nil {
		return Failed(ErrEmptyResponse)
	}

	parts := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		if choice != nil {
			parts = append(parts, choice.Content)
		}
	}
	return Succeeded(joinText(parts))
}
