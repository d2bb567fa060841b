package llm

import (
	"context"

	"lumiere/internal/config"

	"github.com/pkg/errors"
)

var (
	ErrMissingAPIKey = errors.New("missing llm api key")
	ErrEmptyResponse = errors.New("empty llm response")
)

// Client sends one prompt and returns the generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewFromConfig builds the client for the configured provider.
func NewFromConfig(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		c, err := NewLangChainClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini, "":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.Wrap(ErrMissingAPIKey, "GEMINI_API_KEY")
		}
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout), nil
	}
	return nil, errors.Errorf("unknown llm provider %q", cfg.Provider)
}
