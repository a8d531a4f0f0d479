package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PromptConfig is the YAML document read from SUMMARIZER_PROMPT_FILE.
//
//	prompt:
//	  instruction: |
//	    Resume el siguiente texto en menos de 250 palabras...
type PromptConfig struct {
	Prompt struct {
		Instruction string `yaml:"instruction"`
	} `yaml:"prompt"`
}

// LoadPromptConfig loads a prompt override from a YAML file.
// The path comes from the operator's environment, not from request input.
func LoadPromptConfig(path string) (*PromptConfig, error) {
	// #nosec G304 -- path is provided by the operator through SUMMARIZER_PROMPT_FILE
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}

	var pc PromptConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file: %w", err)
	}

	if strings.TrimSpace(pc.Prompt.Instruction) == "" {
		return nil, fmt.Errorf("prompt file validation failed: prompt.instruction is required")
	}

	return &pc, nil
}

// Instruction returns the configured instruction without trailing whitespace.
func (p *PromptConfig) Instruction() string {
	return strings.TrimRight(p.Prompt.Instruction, " \t\r\n")
}

// LoadInstruction returns the instruction from SUMMARIZER_PROMPT_FILE, or ""
// when no file is configured so the built-in instruction applies.
func (c *Config) LoadInstruction() (string, error) {
	if c.Summarizer.PromptFile == "" {
		return "", nil
	}
	pc, err := LoadPromptConfig(c.Summarizer.PromptFile)
	if err != nil {
		return "", err
	}
	return pc.Instruction(), nil
}
