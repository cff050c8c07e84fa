package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	apiKeys []string
	keys    *keyRing
	model   string
	baseURL string
	logger  logger.Logger

	mu      sync.Mutex
	clients map[int]*genai.Client
}

// NewGemini creates a Completer that rotates through the supplied Gemini API keys
func NewGemini(apiKeys []string, baseURL, model string, log logger.Logger) (Completer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &implGemini{
		apiKeys: apiKeys,
		keys:    newKeyRing(len(apiKeys)),
		model:   model,
		baseURL: baseURL,
		logger:  log,
		clients: make(map[int]*genai.Client),
	}, nil
}

func (g *implGemini) client(ctx context.Context, idx int) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.clients[idx]; ok {
		return c, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:  g.apiKeys[idx],
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	g.clients[idx] = c
	return c, nil
}

// Complete sends the prompt to Gemini and returns the text of the first candidate.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		idx := g.keys.get()

		client, err := g.client(ctx, idx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.keys.rotate(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			switch classifyGeminiError(err) {
			case geminiRateLimited:
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.keys.rotate(idx)
				lastErr = err
				continue
			case geminiRejected:
				return "", fmt.Errorf("%w: %v", ErrRejected, err)
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return text.String(), nil
		}

		return "", ErrEmptyCompletion
	}

	return "", fmt.Errorf("%w: %v", ErrKeysExhausted, lastErr)
}

type geminiErrorKind int

const (
	geminiTransient geminiErrorKind = iota
	geminiRateLimited
	geminiRejected
)

func classifyGeminiError(err error) geminiErrorKind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return geminiRateLimited
	case strings.Contains(msg, "INVALID_ARGUMENT") || strings.Contains(msg, "PERMISSION_DENIED") ||
		strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(msg, "NOT_FOUND"):
		return geminiRejected
	default:
		return geminiTransient
	}
}
