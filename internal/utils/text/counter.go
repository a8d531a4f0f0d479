// Package text provides utilities for text processing and analysis.
// Word and character counting here is shared by the validator, the truncator
// and the model adapters so every layer agrees on what a "word" is.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters (accented Spanish letters, emoji) count as one.
//
// Examples:
//
//	CountRunes("hola")     // returns 4
//	CountRunes("canción")  // returns 7
//	CountRunes("")         // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// Words splits text into maximal runs of non-whitespace characters.
// Leading and trailing whitespace is ignored, so the result never contains
// empty strings.
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of whitespace-separated words in text.
//
// Examples:
//
//	CountWords("  uno dos\ttres\n")  // returns 3
//	CountWords("   ")                // returns 0
func CountWords(text string) int {
	return len(Words(strings.TrimSpace(text)))
}
