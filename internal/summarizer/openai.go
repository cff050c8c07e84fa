package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint
const GroqBaseURL = "https://api.groq.com/openai/v1"

type implOpenAI struct {
	clients []*openai.Client
	keys    *keyRing
	model   string
	logger  logger.Logger
}

// NewOpenAI creates a Completer for any OpenAI-compatible chat-completion API.
// An empty baseURL targets OpenAI itself.
func NewOpenAI(apiKeys []string, baseURL, model string, log logger.Logger) (Completer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}

	clients := make([]*openai.Client, len(apiKeys))
	for i, key := range apiKeys {
		cfg := openai.DefaultConfig(key)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		clients[i] = openai.NewClientWithConfig(cfg)
	}

	return &implOpenAI{
		clients: clients,
		keys:    newKeyRing(len(clients)),
		model:   model,
		logger:  log,
	}, nil
}

// Complete rotates API keys on 429 responses
func (c *implOpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(c.clients) {
		idx := c.keys.get()

		resp, err := c.clients[idx].CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			switch status := httpStatus(err); {
			case status == http.StatusTooManyRequests:
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				c.keys.rotate(idx)
				lastErr = err
				continue
			case status == http.StatusBadRequest, status == http.StatusUnauthorized,
				status == http.StatusForbidden, status == http.StatusNotFound:
				return "", fmt.Errorf("%w: %v", ErrRejected, err)
			}
			return "", fmt.Errorf("chat completion: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", ErrEmptyCompletion
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("%w: %v", ErrKeysExhausted, lastErr)
}

func httpStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
