package ai

import (
	"context"
	"errors"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIClient(apiKey, model string, maxTokens int) *OpenAIClient {
	return newOpenAIClient(openai.DefaultConfig(apiKey), model, maxTokens)
}

// NewOpenAIClientWithBaseURL points the client at an OpenAI compatible endpoint.
func NewOpenAIClientWithBaseURL(apiKey, baseURL, model string, maxTokens int) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return newOpenAIClient(cfg, model, maxTokens)
}

func newOpenAIClient(cfg openai.ClientConfig, model string, maxTokens int) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		// temperature is omitempty, a literal 0 would fall back to the API default of 1
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
