package llm

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"personalfinancedss/internal/config"
)

// Module provides the structured-output LLM client.
var Module = fx.Module("llm",
	fx.Provide(provideClient),
)

func provideClient(cfg *config.Config, logger *zap.Logger) (Client, error) {
	return NewGeminiClient(Config{
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.Model,
		TimeoutSec: cfg.LLM.TimeoutSec,
		MaxRetries: cfg.LLM.MaxRetries,
		MaxTokens:  cfg.LLM.MaxTokens,
	}, logger)
}
