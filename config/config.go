// Package config loads configuration from environment variables and .env files.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrMissingAPIKey is returned when the credential for the selected provider is absent.
var ErrMissingAPIKey = errors.New("API key is not configured")

// ConfigurationError reports a configuration problem detected at startup.
// Generation must never be attempted when one is returned.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Config holds all configuration for content-gen
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// LLM
	Provider        string        `env:"LLM_PROVIDER" envDefault:"openai"`
	Model           string        `env:"LLM_MODEL"`
	BaseURL         string        `env:"LLM_BASE_URL"`
	Timeout         time.Duration `env:"LLM_TIMEOUT" envDefault:"0s"`
	RetryMax        int           `env:"LLM_RETRY_MAX" envDefault:"0"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`

	// Storage
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"./data/content.db"`

	// Server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`
}

// Load loads configuration from .env file (if present) and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, &ConfigurationError{Field: "environment", Err: err}
	}
	return cfg, nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() (string, error) {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return "", &ConfigurationError{Field: "OPENAI_API_KEY", Err: ErrMissingAPIKey}
		}
		return c.OpenAIAPIKey, nil
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return "", &ConfigurationError{Field: "ANTHROPIC_API_KEY", Err: ErrMissingAPIKey}
		}
		return c.AnthropicAPIKey, nil
	}
	return "", &ConfigurationError{
		Field: "LLM_PROVIDER",
		Err:   fmt.Errorf("unsupported provider: %s", c.Provider),
	}
}
