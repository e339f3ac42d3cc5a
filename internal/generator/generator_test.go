package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/cecoladevelopment/site-backend/internal/config"
)

// fakeModel implements llms.Model and records the last call.
type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		usable bool
	}{
		{"text", Succeeded("  hello  "), true},
		{"blank text", Succeeded(" \n\t "), false},
		{"error", Failed(errors.New("boom")), false},
		{"nil error", Failed(nil), false},
		{"zero value", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.result.Usable())
		})
	}

	assert.Equal(t, "hello", Succeeded("  hello  ").Text)
	assert.ErrorIs(t, Succeeded("   ").Err, ErrEmptyResponse)
}

func TestAnthropicGenerator_Generate(t *testing.T) {
	fake := &fakeModel{
		resp: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{
				{Content: "Sounds like license sprawl."},
				{Content: "  "},
				{Content: "Get a free assessment."},
			},
		},
	}
	gen := newAnthropicGenerator(fake, DefaultAnthropicModel)

	result := gen.Generate(context.Background(), "too many subscriptions")

	require.True(t, result.Usable())
	assert.Equal(t, "Sounds like license sprawl.\n\n  \n\nGet a free assessment.", result.Text)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, fake.messages[0].Role)
	assert.Equal(t, llms.TextContent{Text: SystemPrompt}, fake.messages[0].Parts[0])
	assert.Equal(t, llms.ChatMessageTypeHuman, fake.messages[1].Role)
	assert.Equal(t, llms.TextContent{Text: "too many subscriptions"}, fake.messages[1].Parts[0])

	assert.Equal(t, MaxOutputTokens, fake.opts.MaxTokens)
	assert.InDelta(t, Temperature, fake.opts.Temperature, 1e-9)
	assert.Equal(t, DefaultAnthropicModel, fake.opts.Model)
}

func TestAnthropicGenerator_Failures(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeModel
	}{
		{"transport error", &fakeModel{err: errors.New("529 overloaded")}},
		{"nil response", &fakeModel{}},
		{"no choices", &fakeModel{resp: &llms.ContentResponse{}}},
		{"blank choices", &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: " "}, nil}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newAnthropicGenerator(tt.fake, "m").Generate(context.Background(), "q")
			assert.False(t, result.Usable())
			assert.Error(t, result.Err)
		})
	}
}

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("First paragraph."),
				genai.Blob{MIMEType: "image/png"},
				genai.Text("Second paragraph."),
			}}},
			nil,
			{},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Second candidate.")}}},
		},
	}

	assert.Equal(t, "First paragraph.\n\nSecond paragraph.\n\nSecond candidate.", geminiText(resp))
	assert.Empty(t, geminiText(nil))
	assert.Empty(t, geminiText(&genai.GenerateContentResponse{}))
	assert.Empty(t, geminiText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
}

func TestJoinText(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"single block", []string{"Hello."}, "Hello."},
		{"blank block kept in place", []string{"First.", " ", "Second."}, "First.\n\n \n\nSecond."},
		{"outer whitespace trimmed", []string{"\n  First.", "Second.  \n"}, "First.\n\nSecond."},
		{"all blank", []string{" ", ""}, ""},
		{"no blocks", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinText(tt.parts))
		})
	}
}

func TestNew_MissingCredential(t *testing.T) {
	for _, provider := range []string{config.ProviderAnthropic, config.ProviderGemini} {
		t.Run(provider, func(t *testing.T) {
			_, err := New(context.Background(), config.AIConfig{Provider: provider})
			assert.ErrorIs(t, err, ErrMissingCredential)
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), config.AIConfig{Provider: "openai", AnthropicAPIKey: "k"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNew_Anthropic(t *testing.T) {
	gen, err := New(context.Background(), config.AIConfig{
		Provider:        config.ProviderAnthropic,
		AnthropicAPIKey: "sk-test",
	})
	require.NoError(t, err)
	defer gen.Close()

	assert.Equal(t, "anthropic", gen.Name())
	assert.Equal(t, DefaultAnthropicModel, gen.(*AnthropicGenerator).model)
}
