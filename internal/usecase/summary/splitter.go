package summary

import (
	"regexp"
	"strings"
)

// Parsed is a model answer split into prose and main ideas.
type Parsed struct {
	Summary string
	Ideas   []string
}

// Splitter separates a raw model answer into a summary and a list of ideas.
type Splitter interface {
	Split(raw string) Parsed
}

var (
	// bulletPattern matches a list marker ("*", "-" or "12.") followed by whitespace.
	bulletPattern = regexp.MustCompile(`^(\*|-|\d+\.)\s+`)
	// bulletStrip removes a leading list marker and any whitespace after it.
	bulletStrip = regexp.MustCompile(`^(\*|-|\d+\.)\s*`)
)

// LineSplitter splits model output line by line. The first line that looks
// like a list item, or mentions "ideas principales", starts the ideas section;
// every line from there on is an idea.
//
// The start triggers overlap (a "1. " line matches both the "1." prefix and
// the bullet pattern). They are kept as-is so the line that opens the ideas
// section stays the same on malformed input.
type LineSplitter struct{}

// Split implements Splitter.
func (LineSplitter) Split(raw string) Parsed {
	var (
		summary []string
		ideas   = []string{}
		inIdeas bool
	)

	for _, line := range nonBlankLines(raw) {
		if !inIdeas && opensIdeas(line) {
			inIdeas = true
		}

		if !inIdeas {
			summary = append(summary, line)
			continue
		}

		if bulletPattern.MatchString(line) {
			ideas = append(ideas, strings.TrimSpace(bulletStrip.ReplaceAllString(line, "")))
		} else {
			ideas = append(ideas, line)
		}
	}

	return Parsed{
		Summary: strings.TrimSpace(strings.Join(summary, " ")),
		Ideas:   ideas,
	}
}

func opensIdeas(line string) bool {
	return strings.Contains(strings.ToLower(line), "ideas principales") ||
		strings.HasPrefix(line, "1.") ||
		strings.HasPrefix(line, "- 1.") ||
		strings.HasPrefix(line, "1 ") ||
		bulletPattern.MatchString(line)
}

// nonBlankLines returns the trimmed, non-empty lines of s in order.
func nonBlankLines(s string) []string {
	raw := strings.Split(strings.TrimSpace(s), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
