package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"resumen-backend/internal/usecase/summary"
)

// OpenAI implements summary.Model using the OpenAI chat completions API.
type OpenAI struct {
	client          *openai.Client
	model           string
	maxTokens       int
	metricsRecorder ModelMetricsRecorder
}

// NewOpenAI creates an OpenAI client against the public API.
func NewOpenAI(cfg Config) *OpenAI {
	return NewOpenAIWithClientConfig(cfg, openai.DefaultConfig(cfg.APIKey))
}

// NewOpenAIWithClientConfig creates an OpenAI client from an explicit client
// configuration, e.g. a custom BaseURL for an OpenAI-compatible gateway.
func NewOpenAIWithClientConfig(cfg Config, clientConfig openai.ClientConfig) *OpenAI {
	return &OpenAI{
		client:          openai.NewClientWithConfig(clientConfig),
		model:           cfg.Model,
		maxTokens:       cfg.MaxTokens,
		metricsRecorder: NewPrometheusModelMetrics(),
	}
}

// Name implements Provider.
func (o *OpenAI) Name() string { return ProviderOpenAI }

// Close implements Provider.
func (o *OpenAI) Close() error { return nil }

// Generate sends prompt as a single user message and returns the content of
// the first choice.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := o.generate(ctx, prompt)
	return observe(ctx, o.metricsRecorder, ProviderOpenAI, start, out, err)
}

func (o *OpenAI) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// Guard the index; some gateways return 200 with no choices.
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices: %w", summary.ErrEmptyGeneration)
	}
	return resp.Choices[0].Message.Content, nil
}
