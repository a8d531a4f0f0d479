package summary

import (
	"strings"

	"resumen-backend/internal/utils/text"
)

const (
	// DefaultWordCap is the maximum number of words kept in a generated summary.
	DefaultWordCap = 350

	ellipsis = "..."
)

// TruncateWords caps s at wordCap words. Longer input is cut to its first
// wordCap words, joined by single spaces, with "..." appended. Input within
// the cap is returned unchanged.
func TruncateWords(s string, wordCap int) string {
	words := text.Words(s)
	if len(words) <= wordCap {
		return s
	}
	return strings.Join(words[:wordCap], " ") + ellipsis
}
