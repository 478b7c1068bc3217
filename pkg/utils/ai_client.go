package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
)

// AIClient is a generative provider that can complete prompts and embed text.
type AIClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

type AIClientConfig struct {
	Provider       string
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	Timeout        time.Duration
}

// NewAIClient builds the configured provider. A missing API key yields a
// client whose every call fails with ErrAINotConfigured, so the server still
// starts and reports the problem per request.
func NewAIClient(ctx context.Context, cfg AIClientConfig) (AIClient, error) {
	var (
		client AIClient
		err    error
	)
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.EmbeddingModel, cfg.Timeout)
	case "gemini", "":
		client, err = NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.EmbeddingModel, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
	if errors.Is(err, ErrAINotConfigured) {
		return unconfiguredClient{}, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

type unconfiguredClient struct{}

func (unconfiguredClient) Complete(context.Context, string) (string, error) {
	return "", ErrAINotConfigured
}

func (unconfiguredClient) Embed(context.Context, string) (pgvector.Vector, error) {
	return pgvector.Vector{}, ErrAINotConfigured
}

func (unconfiguredClient) Close() error { return nil }
