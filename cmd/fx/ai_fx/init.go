package ai_fx

import (
	"context"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideAIClient,
	provideCompleter,
	provideEmbedder,
)

func provideAIClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.AIClient, error) {
	ai := cfg.AI
	clientCfg := utils.AIClientConfig{
		Provider: ai.Provider,
		Timeout:  ai.Timeout,
	}
	switch ai.Provider {
	case "openai":
		clientCfg.APIKey = ai.OpenAI.APIKey
		clientCfg.BaseURL = ai.OpenAI.BaseURL
		clientCfg.Model = ai.OpenAI.Model
		clientCfg.EmbeddingModel = ai.OpenAI.EmbeddingModel
	default:
		clientCfg.APIKey = ai.Gemini.APIKey
		clientCfg.Model = ai.Gemini.Model
		clientCfg.EmbeddingModel = ai.Gemini.EmbeddingModel
	}
	if clientCfg.APIKey == "" {
		log.Warn("ai api key is not set; generation endpoints will fail", zap.String("provider", ai.Provider))
	}

	client, err := utils.NewAIClient(context.Background(), clientCfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))
	log.Info("ai client ready", zap.String("provider", ai.Provider), zap.String("model", clientCfg.Model))
	return client, nil
}

func provideCompleter(client utils.AIClient, cfg *config.Config, log *zap.Logger) pipeline.Completer {
	b := cfg.AI.Breaker
	return utils.NewResilientCompleter(client, utils.BreakerSettings{
		Name:             "ai-completion",
		MaxRequests:      b.MaxRequests,
		Interval:         b.Interval,
		Timeout:          b.Timeout,
		FailureThreshold: b.FailureThreshold,
	}, cfg.AI.MaxRetries, cfg.AI.RetryBackoff, log)
}

func provideEmbedder(client utils.AIClient) services.Embedder {
	return client
}
