// Package summarizer adapts generative model APIs (Gemini, Claude, OpenAI) to
// the summary.Model interface. Every adapter makes exactly one API call per
// Generate and reports its outcome through structured logs and Prometheus
// metrics.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resumen-backend/internal/observability/logging"
	"resumen-backend/internal/usecase/summary"
	"resumen-backend/internal/utils/text"
)

// Provider is a summary.Model bound to a concrete backend.
type Provider interface {
	summary.Model

	// Name returns the provider name used in logs and metric labels.
	Name() string

	// Close releases any connections held by the backend client.
	Close() error
}

// New builds the Provider selected by cfg. cfg is completed with
// WithDefaults and validated first.
func New(ctx context.Context, cfg Config) (Provider, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case ProviderGemini:
		p, err = NewGemini(ctx, cfg)
	case ProviderClaude:
		p = NewClaude(cfg)
	case ProviderOpenAI:
		p = NewOpenAI(cfg)
	case ProviderNoOp:
		p = NewNoOp()
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Initialized summarizer",
		slog.String("provider", p.Name()),
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))
	return p, nil
}

// observe logs and records the outcome of a single model call and passes
// (out, err) through unchanged.
func observe(ctx context.Context, m ModelMetricsRecorder, provider string, start time.Time, out string, err error) (string, error) {
	duration := time.Since(start)
	logger := logging.FromContext(ctx)

	switch {
	case errors.Is(err, summary.ErrEmptyGeneration) || (err == nil && strings.TrimSpace(out) == ""):
		m.RecordCall(provider, ResultEmpty, duration)
		logger.WarnContext(ctx, "Model returned no text",
			slog.String("provider", provider),
			slog.Duration("duration", duration))
	case err != nil:
		m.RecordCall(provider, ResultError, duration)
		logger.ErrorContext(ctx, "Model call failed",
			slog.String("provider", provider),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
	default:
		length := text.CountRunes(out)
		m.RecordCall(provider, ResultSuccess, duration)
		m.RecordOutputLength(provider, length)
		logger.InfoContext(ctx, "Model call completed",
			slog.String("provider", provider),
			slog.Int("output_length", length),
			slog.Duration("duration", duration))
	}
	return out, err
}
