package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resumen-backend/internal/usecase/summary"
)

// contentGenerator is the subset of *genai.GenerativeModel used by Gemini.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini implements summary.Model using the Google Gemini API.
type Gemini struct {
	client          *genai.Client
	model           contentGenerator
	metricsRecorder ModelMetricsRecorder
}

// NewGemini creates a Gemini client for cfg.Model authenticated with cfg.APIKey.
func NewGemini(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Gemini, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	return &Gemini{
		client:          client,
		model:           client.GenerativeModel(cfg.Model),
		metricsRecorder: NewPrometheusModelMetrics(),
	}, nil
}

// Name implements Provider.
func (g *Gemini) Name() string { return ProviderGemini }

// Close implements Provider.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Generate sends prompt to Gemini and returns the text of the first candidate.
// Blocked prompts and candidate-less responses wrap summary.ErrEmptyGeneration.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := g.generate(ctx, prompt)
	return observe(ctx, g.metricsRecorder, ProviderGemini, start, out, err)
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", fmt.Errorf("gemini: %s: %w", blocked.Error(), summary.ErrEmptyGeneration)
		}
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	return geminiText(resp)
}

// geminiText concatenates the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no candidates: %w", summary.ErrEmptyGeneration)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
