package llm

import (
	"fmt"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/model"
)

// NewClient creates a completion client based on configuration
func NewClient(config Config) (Client, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai", "deepseek":
		return NewOpenAIClient(config)

	case "anthropic", "claude":
		return NewAnthropicClient(config)

	case "ollama":
		return NewOllamaClient(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
