package generator

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator drafts replies with Google's Gemini models.
type GeminiGenerator struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, opts ...option.ClientOption) (*GeminiGenerator, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(Temperature)
	model.SetMaxOutputTokens(MaxOutputTokens)
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt))

	return &GeminiGenerator{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

func (g *GeminiGenerator) Name() string {
	return "gemini"
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiGenerator) Generate(ctx context.Context, query string) Result {
	resp, err := g.model.GenerateContent(ctx, genai.Text(query))
	if err != nil {
		return Failed(fmt.Errorf("failed to generate content: %w", err))
	}
	return Succeeded(geminiText(resp))
}

// geminiText joins the text parts of every candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var parts []string
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				parts = append(parts, string(text))
			}
		}
	}
	return joinText(parts)
}
