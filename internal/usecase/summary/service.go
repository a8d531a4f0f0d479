package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resumen-backend/internal/domain/entity"
	"resumen-backend/internal/observability/logging"
	"resumen-backend/internal/observability/tracing"
	"resumen-backend/internal/utils/text"
)

// DefaultThresholdWords is the word count above which the model is called.
// Shorter texts are returned as their own summary.
const DefaultThresholdWords = 400

// Outcome labels reported to the MetricsRecorder.
const (
	OutcomePassthrough = "passthrough"
	OutcomeSummarized  = "summarized"
	OutcomeRejected    = "rejected"
	OutcomeNoSummary   = "no_summary"
	OutcomeError       = "error"
)

// Config holds the limits of the summarization use case.
// It is built once at startup and never mutated.
type Config struct {
	// MinWords and MaxWords bound the accepted input size, inclusive.
	MinWords int
	MaxWords int

	// ThresholdWords is the largest input returned without calling the model.
	ThresholdWords int

	// WordCap is the maximum number of words kept in a generated summary.
	WordCap int

	// Instruction is the prompt text placed before the input.
	// Empty means DefaultInstruction.
	Instruction string

	// Timeout bounds the model call. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns the limits used by the public API.
func DefaultConfig() Config {
	return Config{
		MinWords:       entity.DefaultMinWords,
		MaxWords:       entity.DefaultMaxWords,
		ThresholdWords: DefaultThresholdWords,
		WordCap:        DefaultWordCap,
		Instruction:    DefaultInstruction,
	}
}

// Validate checks configuration correctness.
func (c Config) Validate() error {
	if c.MinWords < 0 {
		return fmt.Errorf("min words must not be negative, got %d", c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("max words (%d) must be greater than or equal to min words (%d)", c.MaxWords, c.MinWords)
	}
	if c.ThresholdWords < 0 {
		return fmt.Errorf("threshold words must not be negative, got %d", c.ThresholdWords)
	}
	if c.WordCap <= 0 {
		return fmt.Errorf("word cap must be positive, got %d", c.WordCap)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

// MetricsRecorder receives use-case level measurements.
type MetricsRecorder interface {
	RecordOutcome(outcome string)
	RecordInputWords(words int)
	RecordResult(summaryWords, ideas int)
}

type noopMetrics struct{}

func (noopMetrics) RecordOutcome(string) {}
func (noopMetrics) RecordInputWords(int) {}
func (noopMetrics) RecordResult(int, int) {}

// Result is the summary returned to the caller.
type Result struct {
	Summary string
	// Ideas is never nil; it is empty when the model was not called.
	Ideas []string
	// Summarized reports whether the model was called.
	Summarized bool
}

// Option configures a Service.
type Option func(*Service)

// WithSplitter replaces the default LineSplitter.
func WithSplitter(sp Splitter) Option {
	return func(s *Service) { s.splitter = sp }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// Service orchestrates validation, the model call and answer parsing.
// It is safe for concurrent use; it holds no per-request state.
type Service struct {
	model    Model
	splitter Splitter
	metrics  MetricsRecorder
	cfg      Config
}

// NewService creates a summarization service backed by model.
func NewService(model Model, cfg Config, opts ...Option) *Service {
	s := &Service{
		model:    model,
		splitter: LineSplitter{},
		metrics:  noopMetrics{},
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the limits the service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Summarize validates input and returns its summary.
//
// Errors:
//   - *entity.ValidationError when the input is empty, too short or too long
//   - ErrNoValidSummary when the model answered without usable text
//   - *UnexpectedError for any other failure, including panics
func (s *Service) Summarize(ctx context.Context, input string) (res *Result, err error) {
	logger := logging.FromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("summarization panicked", slog.Any("panic", rec))
			s.metrics.RecordOutcome(OutcomeError)
			res, err = nil, &UnexpectedError{Err: fmt.Errorf("%v", rec)}
		}
	}()

	if err := entity.ValidateText(input, s.cfg.MinWords, s.cfg.MaxWords); err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			logger.Info("text rejected", slog.String("reason", vErr.Reason.String()))
		}
		s.metrics.RecordOutcome(OutcomeRejected)
		return nil, err
	}

	words := text.CountWords(input)
	s.metrics.RecordInputWords(words)

	if words <= s.cfg.ThresholdWords {
		logger.Debug("text below summarization threshold",
			slog.Int("words", words),
			slog.Int("threshold", s.cfg.ThresholdWords))
		s.metrics.RecordOutcome(OutcomePassthrough)
		return &Result{Summary: strings.TrimSpace(input), Ideas: []string{}}, nil
	}

	return s.summarize(ctx, logger, input, words)
}

func (s *Service) summarize(ctx context.Context, logger *slog.Logger, input string, words int) (*Result, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "summary.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("input.words", words))

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	logger.Info("starting summarization", slog.Int("words", words))
	start := time.Now()

	gen := generate(ctx, s.model, BuildPrompt(s.cfg.Instruction, input))
	duration := time.Since(start)

	switch {
	case gen.Empty():
		logger.Warn("model returned no usable text",
			slog.Duration("duration", duration),
			slog.Any("error", gen.Err))
		span.SetStatus(codes.Error, "empty generation")
		s.metrics.RecordOutcome(OutcomeNoSummary)
		return nil, ErrNoValidSummary
	case gen.Err != nil:
		logger.Error("model call failed",
			slog.Duration("duration", duration),
			slog.Any("error", gen.Err))
		span.RecordError(gen.Err)
		span.SetStatus(codes.Error, "model call failed")
		s.metrics.RecordOutcome(OutcomeError)
		return nil, &UnexpectedError{Err: gen.Err}
	}

	parsed := s.splitter.Split(strings.TrimSpace(gen.Text))
	if parsed.Summary == "" {
		logger.Warn("model answer has no summary section",
			slog.Int("ideas", len(parsed.Ideas)),
			slog.Duration("duration", duration))
		span.SetStatus(codes.Error, "no summary section")
		s.metrics.RecordOutcome(OutcomeNoSummary)
		return nil, ErrNoValidSummary
	}

	ideas := parsed.Ideas
	if ideas == nil {
		ideas = []string{}
	}
	summaryText := TruncateWords(parsed.Summary, s.cfg.WordCap)
	summaryWords := text.CountWords(summaryText)

	logger.Info("summarization completed",
		slog.Int("summary_words", summaryWords),
		slog.Int("ideas", len(ideas)),
		slog.Bool("truncated", summaryText != parsed.Summary),
		slog.Duration("duration", duration))
	span.SetAttributes(
		attribute.Int("summary.words", summaryWords),
		attribute.Int("summary.ideas", len(ideas)),
	)

	s.metrics.RecordOutcome(OutcomeSummarized)
	s.metrics.RecordResult(summaryWords, len(ideas))

	return &Result{Summary: summaryText, Ideas: ideas, Summarized: true}, nil
}
