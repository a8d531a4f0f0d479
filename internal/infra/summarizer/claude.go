package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumen-backend/internal/usecase/summary"
)

// Claude implements summary.Model using Anthropic's Messages API.
type Claude struct {
	client          anthropic.Client
	model           string
	maxTokens       int
	metricsRecorder ModelMetricsRecorder
}

// NewClaude creates a Claude client. SDK-level retries are disabled so each
// Generate is a single API call. opts are appended after the defaults.
func NewClaude(cfg Config, opts ...option.RequestOption) *Claude {
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Claude{
		client:          anthropic.NewClient(opts...),
		model:           cfg.Model,
		maxTokens:       cfg.MaxTokens,
		metricsRecorder: NewPrometheusModelMetrics(),
	}
}

// Name implements Provider.
func (c *Claude) Name() string { return ProviderClaude }

// Close implements Provider.
func (c *Claude) Close() error { return nil }

// Generate sends prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := c.generate(ctx, prompt)
	return observe(ctx, c.metricsRecorder, ProviderClaude, start, out, err)
}

func (c *Claude) generate(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude api returned no text blocks: %w", summary.ErrEmptyGeneration)
	}
	return sb.String(), nil
}
