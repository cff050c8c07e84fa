package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

// NewCompleter creates the Completer for the configured provider
func NewCompleter(cfg config.SummarizerConfig, log logger.Logger) (Completer, error) {
	switch cfg.Provider {
	case "groq", "":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		return NewOpenAI(cfg.APIKeys, baseURL, cfg.Model, log)
	case "openai":
		return NewOpenAI(cfg.APIKeys, cfg.BaseURL, cfg.Model, log)
	case "gemini":
		return NewGemini(cfg.APIKeys, cfg.BaseURL, cfg.Model, log)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}
