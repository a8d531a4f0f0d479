package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderNoOp   = "noop"
)

// DefaultMaxTokens caps the model response when the operator sets nothing.
const DefaultMaxTokens = 1024

// ErrUnknownProvider is returned for a provider name New does not know.
var ErrUnknownProvider = errors.New("unknown summarizer provider")

// Config selects and parameterizes the model backend.
type Config struct {
	// Provider is one of gemini, claude, openai or noop.
	Provider string
	// APIKey is the provider credential. Unused by noop.
	APIKey string
	// Model overrides the provider's default model identifier.
	Model string
	// MaxTokens caps the response length for Claude and OpenAI.
	MaxTokens int
}

// DefaultModel returns the model identifier used when Config.Model is empty.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.0-flash"
	case ProviderClaude:
		return string(anthropic.ModelClaudeSonnet4_5_20250929)
	case ProviderOpenAI:
		return openai.GPT4oMini
	default:
		return ""
	}
}

// WithDefaults returns a copy with the provider normalized and empty fields
// filled in.
func (c Config) WithDefaults() Config {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Model == "" {
		c.Model = DefaultModel(c.Provider)
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderClaude, ProviderOpenAI:
		if strings.TrimSpace(c.APIKey) == "" {
			return fmt.Errorf("API_KEY is required for provider %q", c.Provider)
		}
		if c.MaxTokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
		}
	case ProviderNoOp:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}
