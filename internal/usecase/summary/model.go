package summary

import (
	"context"
	"errors"
	"strings"
)

// Model is a generative-language model that answers a single prompt.
// Implementations live in internal/infra/summarizer.
type Model interface {
	// Generate sends prompt to the model and returns its text answer.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts an ordinary function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f ModelFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Generation is the outcome of one model call: either usable text or a failure.
type Generation struct {
	Text string
	Err  error
}

// Usable reports whether the generation carries non-blank text and no error.
func (g Generation) Usable() bool {
	return g.Err == nil && strings.TrimSpace(g.Text) != ""
}

// Empty reports whether the model answered without any usable text.
// A provider-level ErrEmptyGeneration counts as empty, not as a failure.
func (g Generation) Empty() bool {
	if g.Err != nil {
		return errors.Is(g.Err, ErrEmptyGeneration)
	}
	return strings.TrimSpace(g.Text) == ""
}

// generate invokes the model once and captures the outcome.
func generate(ctx context.Context, m Model, prompt string) Generation {
	out, err := m.Generate(ctx, prompt)
	return Generation{Text: out, Err: err}
}
