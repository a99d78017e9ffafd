package answer

import (
	"context"
	"fmt"
	"time"
)

// Provider names accepted by NewGenerator.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderOpenAI      = "openai"
)

// Generator produces raw text for a prompt. Implementations must honor ctx.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures the live tier.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewGenerator builds the generator for cfg.Provider. It returns a nil
// Generator and no error when no API key is configured.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case ProviderHuggingFace, "":
		return NewHuggingFaceGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout), nil
	case ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	case ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
