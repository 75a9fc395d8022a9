package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no API key was provided at startup.
var ErrNotConfigured = errors.New("llm: completion backend is not configured")

// Client wraps an OpenAI-compatible chat-completion endpoint. A custom
// base URL points it at any provider speaking the same protocol.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewClient(apiKey, baseURL, model string, maxTokens int, temperature float32) *Client {
	c := &Client{
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
	if apiKey == "" {
		return c
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	c.api = openai.NewClientWithConfig(cfg)
	return c
}

// Complete sends one system+user exchange and returns the raw completion
// text. No retries; the caller decides how to degrade.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
