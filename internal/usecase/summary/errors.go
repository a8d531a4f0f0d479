// Package summary implements the summarization use case: it validates the
// input text, decides whether the model must be called, and turns the model's
// free-form answer into a summary plus a list of main ideas.
package summary

import (
	"errors"
	"fmt"
)

// Sentinel errors for the summarization use case.
var (
	// ErrNoValidSummary is returned when the model produced no usable text.
	// Its client-facing message is MsgNoValidSummary.
	ErrNoValidSummary = errors.New("no valid summary generated")

	// ErrEmptyGeneration is returned by model adapters when the provider answered
	// but the answer carries no text (no candidates, blocked output, empty content).
	// The use case maps it to ErrNoValidSummary.
	ErrEmptyGeneration = errors.New("model returned no text")
)

// MsgNoValidSummary is the message returned to clients for ErrNoValidSummary.
const MsgNoValidSummary = "No se pudo generar un resumen válido."

// UnexpectedError wraps any failure that is neither a validation error nor an
// empty model answer. Its message keeps the underlying detail for diagnostics.
type UnexpectedError struct {
	Err error
}

// Error returns the client-facing message including the failure detail.
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("Ocurrió un error: %s", e.Err.Error())
}

// Unwrap returns the underlying error.
func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
