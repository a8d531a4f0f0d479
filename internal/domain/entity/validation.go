// Package entity holds the request-scoped domain values of the summarization
// service and the rules that validate them.
package entity

import (
	"fmt"
	"strings"

	"resumen-backend/internal/utils/text"
)

const (
	// DefaultMinWords is the smallest accepted input, in words.
	DefaultMinWords = 20
	// DefaultMaxWords is the largest accepted input, in words.
	DefaultMaxWords = 24000
)

// ValidateText checks the word count of an input text against the given bounds.
// It returns nil when the text is accepted, or a *ValidationError describing
// the rejection. Bounds are inclusive.
func ValidateText(input string, minWords, maxWords int) error {
	if strings.TrimSpace(input) == "" {
		return &ValidationError{
			Reason:  ReasonEmpty,
			Message: "No se recibió ningún texto.",
		}
	}

	words := text.CountWords(input)
	if words < minWords {
		return &ValidationError{
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("El texto es demasiado corto. Mínimo %d palabras.", minWords),
		}
	}
	if words > maxWords {
		return &ValidationError{
			Reason:  ReasonTooLong,
			Message: fmt.Sprintf("El texto es demasiado largo. Máximo %d palabras.", maxWords),
		}
	}

	return nil
}
