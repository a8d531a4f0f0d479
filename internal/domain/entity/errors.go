package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for input text validation.
var (
	// ErrEmptyText indicates that no text (or only whitespace) was received.
	ErrEmptyText = errors.New("empty text")

	// ErrTextTooShort indicates that the text has fewer words than the configured minimum.
	ErrTextTooShort = errors.New("text too short")

	// ErrTextTooLong indicates that the text has more words than the configured maximum.
	ErrTextTooLong = errors.New("text too long")
)

// RejectReason identifies why a text was rejected by the validator.
type RejectReason int

const (
	// ReasonEmpty is used for empty or whitespace-only text.
	ReasonEmpty RejectReason = iota + 1
	// ReasonTooShort is used when the word count is below the minimum.
	ReasonTooShort
	// ReasonTooLong is used when the word count is above the maximum.
	ReasonTooLong
)

// String returns the machine-readable name of the reason.
func (r RejectReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonTooShort:
		return "too_short"
	case ReasonTooLong:
		return "too_long"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// ValidationError represents a rejected input text.
// Message is the human-readable reason returned to API clients.
type ValidationError struct {
	Reason  RejectReason
	Message string
}

// Error returns the human-readable rejection message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap maps the reason to its sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	switch e.Reason {
	case ReasonEmpty:
		return ErrEmptyText
	case ReasonTooShort:
		return ErrTextTooShort
	case ReasonTooLong:
		return ErrTextTooLong
	default:
		return nil
	}
}
