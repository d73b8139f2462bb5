package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/birmacher/content-gen/logger"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	APITimeoutOption OptionType = "api_timeout"
	RetryMaxOption   OptionType = "retry_max"
	BaseURLOption    OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithAPITimeout bounds each request. Zero leaves the caller's context in charge.
func WithAPITimeout(timeout time.Duration) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithRetryMax sets how many times a failed HTTP request is retried
func WithRetryMax(retryMax int) Option {
	return Option{
		Type:  RetryMaxOption,
		Value: retryMax,
	}
}

// WithBaseURL points the provider at a different API endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request is a single role-structured completion request
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// Response is the first candidate returned by the provider.
// Content is empty when the provider returned no text.
type Response struct {
	Content      string
	Model        string
	FinishReason string
}

// LLM defines the interface for chat-style completion providers
type LLM interface {
	// Complete sends one request and waits for the full response
	Complete(ctx context.Context, req Request) (Response, error)
}

// settings collects option values shared by all providers
type settings struct {
	modelName  string
	apiTimeout time.Duration
	retryMax   int
	baseURL    string
}

func applyOptions(s *settings, opts []Option) {
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				s.modelName = modelName
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(time.Duration); ok {
				s.apiTimeout = timeout
			}
		case RetryMaxOption:
			if retryMax, ok := opt.Value.(int); ok && retryMax >= 0 {
				s.retryMax = retryMax
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				s.baseURL = baseURL
			}
		}
	}
}

// withTimeout derives a bounded context when a timeout is configured
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// NewLLM creates a client for the named provider
func NewLLM(providerName, apiKey string, opts ...Option) (LLM, error) {
	var llmClient LLM
	var err error

	switch providerName {
	case ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, opts...)
	case ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, opts...)
	default:
		err = fmt.Errorf("unsupported provider: %s", providerName)
	}

	if err == nil {
		logger.Debugf("Using LLM provider: %s", providerName)
	}

	return llmClient, err
}
