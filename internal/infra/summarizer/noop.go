package summarizer

import (
	"context"
	"strings"
)

// NoOp is a model that echoes the text embedded in the prompt, without
// contacting any API. It is meant for local development without credentials.
type NoOp struct{}

// NewNoOp creates a new NoOp model.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Name implements Provider.
func (n *NoOp) Name() string { return ProviderNoOp }

// Close implements Provider.
func (n *NoOp) Close() error { return nil }

// Generate returns everything after the instruction, i.e. after the first
// blank line of the prompt. A prompt without a blank line is returned as is.
func (n *NoOp) Generate(_ context.Context, prompt string) (string, error) {
	if _, body, ok := strings.Cut(prompt, "\n\n"); ok {
		return body, nil
	}
	return prompt, nil
}
