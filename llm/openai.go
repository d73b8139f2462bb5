package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/birmacher/content-gen/logger"
	"github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

// chatService is the subset of the go-openai client used here
type chatService interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client   chatService
	settings settings
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	s := settings{modelName: DefaultOpenAIModel}
	applyOptions(&s, opts)

	retryConfig := DefaultRetryConfig()
	retryConfig.RetryMax = s.retryMax
	retryClient := NewRetryableClient(retryConfig)

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = retryClient.StandardClient()
	if s.baseURL != "" {
		config.BaseURL = s.baseURL
	}

	logger.Debugf("OpenAI client initialized with model: %s, timeout: %s", s.modelName, s.apiTimeout)

	return &OpenAIModel{
		client:   openai.NewClientWithConfig(config),
		settings: s,
	}, nil
}

// Model returns the model identifier sent with every request
func (o *OpenAIModel) Model() string {
	return o.settings.modelName
}

// Complete sends a system and a user message to OpenAI and returns the first choice
func (o *OpenAIModel) Complete(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := withTimeout(ctx, o.settings.apiTimeout)
	defer cancel()

	logger.Debug("Adding system prompt to OpenAI request")
	logger.Debug(req.SystemPrompt)
	logger.Debug("Adding user prompt to OpenAI request")
	logger.Debug(req.UserPrompt)

	chatReq := openai.ChatCompletionRequest{
		Model: o.settings.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	logger.Infof("Sending request to OpenAI with model %s, max tokens %d", o.settings.modelName, req.MaxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		logger.Errorf("failed to create chat completion: %v", err)
		return Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		logger.Warn("OpenAI response contained no choices")
		return Response{Model: resp.Model}, nil
	}

	return Response{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}
