package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePromptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPromptConfig(t *testing.T) {
	path := writePromptFile(t, `
prompt:
  instruction: |
    Resume el texto en tres frases.
    Luego lista las ideas principales:
`)

	pc, err := LoadPromptConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Resume el texto en tres frases.\nLuego lista las ideas principales:", pc.Instruction())
}

func TestLoadPromptConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid yaml", content: "prompt: [unterminated", wantErr: "failed to parse prompt file"},
		{name: "missing instruction", content: "prompt:\n  other: x\n", wantErr: "prompt.instruction is required"},
		{name: "blank instruction", content: "prompt:\n  instruction: \"   \"\n", wantErr: "prompt.instruction is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPromptConfig(writePromptFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPromptConfig_MissingFile(t *testing.T) {
	_, err := LoadPromptConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_LoadInstruction(t *testing.T) {
	t.Run("no file configured", func(t *testing.T) {
		cfg := &Config{}
		got, err := cfg.LoadInstruction()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("file configured", func(t *testing.T) {
		cfg := &Config{}
		cfg.Summarizer.PromptFile = writePromptFile(t, "prompt:\n  instruction: Resume.\n")
		got, err := cfg.LoadInstruction()
		require.NoError(t, err)
		assert.Equal(t, "Resume.", got)
	})
}
