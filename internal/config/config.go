// Package config loads the service configuration from the environment.
//
// An optional .env file in the working directory is read first; variables
// already present in the process environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"resumen-backend/internal/infra/summarizer"
	"resumen-backend/internal/usecase/summary"
)

// Config is the immutable service configuration built once at startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"10000"`
	// Version is reported by /health and attached to traces.
	Version string `env:"VERSION" envDefault:"dev"`
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"4194304"`

	Log        LogConfig
	Summarizer SummarizerConfig
	Text       TextConfig
	CORS       CORSConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// SummarizerConfig selects the generative model backend.
type SummarizerConfig struct {
	Provider  string `env:"SUMMARIZER_PROVIDER" envDefault:"gemini"`
	APIKey    string `env:"API_KEY"`
	Model     string `env:"SUMMARIZER_MODEL"`
	MaxTokens int    `env:"SUMMARIZER_MAX_TOKENS" envDefault:"1024"`
	// Timeout bounds a single model call. Zero means no bound.
	Timeout time.Duration `env:"SUMMARIZER_TIMEOUT" envDefault:"0s"`
	// PromptFile optionally points at a YAML file overriding the instruction.
	PromptFile string `env:"SUMMARIZER_PROMPT_FILE"`
}

// TextConfig holds the word-count rules applied to every request.
type TextConfig struct {
	MinWords       int `env:"MIN_WORDS" envDefault:"20"`
	MaxWords       int `env:"MAX_WORDS" envDefault:"24000"`
	ThresholdWords int `env:"SUMMARY_THRESHOLD_WORDS" envDefault:"400"`
	WordCap        int `env:"SUMMARY_WORD_CAP" envDefault:"350"`
}

// CORSConfig holds the cross-origin policy. "*" in AllowedOrigins allows any origin.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,POST,OPTIONS" envSeparator:","`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type,Authorization,X-Request-ID" envSeparator:","`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"86400"`
}

// Load reads .env (if present) and the process environment, then validates
// the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFromMap builds a Config from vars instead of the process environment.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Summarizer.Timeout < 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT must not be negative")
	}
	if err := c.SummarizerModel().WithDefaults().Validate(); err != nil {
		return err
	}
	if err := c.SummaryConfig().Validate(); err != nil {
		return err
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("CORS_MAX_AGE must be non-negative, got %d", c.CORS.MaxAge)
	}
	return nil
}

// SummarizerModel maps the configuration onto the model backend settings.
func (c *Config) SummarizerModel() summarizer.Config {
	return summarizer.Config{
		Provider:  c.Summarizer.Provider,
		APIKey:    c.Summarizer.APIKey,
		Model:     c.Summarizer.Model,
		MaxTokens: c.Summarizer.MaxTokens,
	}
}

// SummaryConfig maps the configuration onto the orchestrator settings.
// The instruction is left empty; LoadPrompt supplies an override.
func (c *Config) SummaryConfig() summary.Config {
	return summary.Config{
		MinWords:       c.Text.MinWords,
		MaxWords:       c.Text.MaxWords,
		ThresholdWords: c.Text.ThresholdWords,
		WordCap:        c.Text.WordCap,
		Timeout:        c.Summarizer.Timeout,
	}
}

// Provider returns the normalized provider name.
func (c *Config) Provider() string {
	return strings.ToLower(strings.TrimSpace(c.Summarizer.Provider))
}
