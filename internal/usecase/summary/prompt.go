package summary

import "strings"

// DefaultInstruction asks the model for a summary under 250 words followed by
// five main ideas, without section headings.
const DefaultInstruction = "Resume el siguiente texto en menos de 250 palabras sin perder el significado esencial. " +
	"Después, dame 5 ideas principales del texto. No coloques encabezados como 'Resumen' ni 'Ideas principales':"

// BuildPrompt embeds text after the instruction, separated by a blank line.
// An empty instruction falls back to DefaultInstruction.
func BuildPrompt(instruction, text string) string {
	if strings.TrimSpace(instruction) == "" {
		instruction = DefaultInstruction
	}
	var b strings.Builder
	b.Grow(len(instruction) + len(text) + 2)
	b.WriteString(instruction)
	b.WriteString("\n\n")
	b.WriteString(text)
	return b.String()
}
