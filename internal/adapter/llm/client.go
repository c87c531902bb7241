// Package llm implements the chat-completion port against any
// OpenAI-compatible endpoint (Groq by default).
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"wellness/internal/domain"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// ErrNoChoices indicates the provider answered without any completion.
var ErrNoChoices = errors.New("no completion choices returned")

var _ domain.ChatCompleter = (*Client)(nil)

// Client sends chat completions through go-openai.
type Client struct {
	api *openai.Client
}

// New creates a Client for apiKey. An empty baseURL selects DefaultBaseURL; a
// nil httpClient selects http.DefaultClient.
func New(apiKey, baseURL string, httpClient *http.Client) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Complete sends req and returns the first choice's content. It does not retry.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
