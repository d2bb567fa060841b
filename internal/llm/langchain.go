package llm

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient talks to any OpenAI-compatible endpoint through langchaingo.
type LangChainClient struct {
	model   llms.Model
	timeout time.Duration
}

func NewLangChainClient(apiKey, model, baseURL string, timeout time.Duration) (*LangChainClient, error) {
	if apiKey == "" {
		return nil, errors.Wrap(ErrMissingAPIKey, "OPENAI_API_KEY")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
	}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	m, err := openai.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create openai model")
	}
	return NewLangChainModelClient(m, timeout), nil
}

// NewLangChainModelClient wraps an already built model.
func NewLangChainModelClient(m llms.Model, timeout time.Duration) *LangChainClient {
	return &LangChainClient{model: m, timeout: timeout}
}

func (l *LangChainClient) Generate(ctx context.Context, prompt string) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", errors.Wrap(err, "langchain generate")
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
