package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/birmacher/content-gen/logger"
)

const DefaultAnthropicModel = string(anthropic.ModelClaude3_5HaikuLatest)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client   anthropic.Client
	settings settings
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	if apiKey == "" {
		errMsg := "Anthropic API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	s := settings{modelName: DefaultAnthropicModel}
	applyOptions(&s, opts)

	retryConfig := DefaultRetryConfig()
	retryConfig.RetryMax = s.retryMax
	retryClient := NewRetryableClient(retryConfig)

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(retryClient.StandardClient()),
		// retries are owned by the transport
		option.WithMaxRetries(0),
	}
	if s.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(s.baseURL))
	}

	logger.Debugf("Anthropic client initialized with model: %s, timeout: %s", s.modelName, s.apiTimeout)

	return &AnthropicModel{
		client:   anthropic.NewClient(clientOpts...),
		settings: s,
	}, nil
}

// Model returns the model identifier sent with every request
func (a *AnthropicModel) Model() string {
	return a.settings.modelName
}

// Complete sends the prompts to Anthropic and joins the returned text blocks
func (a *AnthropicModel) Complete(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := withTimeout(ctx, a.settings.apiTimeout)
	defer cancel()

	messageParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.settings.modelName),
		MaxTokens: int64(req.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	logger.Infof("Sending request to Anthropic with model %s, max tokens %d", a.settings.modelName, req.MaxTokens)

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		logger.Errorf("failed to create message: %v", err)
		return Response{}, fmt.Errorf("failed to create message: %w", err)
	}

	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	return Response{
		Content:      content,
		Model:        string(message.Model),
		FinishReason: string(message.StopReason),
	}, nil
}
