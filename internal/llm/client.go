package llm

import "context"

// Client defines the interface for completion providers
type Client interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt (plus optional history) and returns the
	// assembled text response
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Message is one turn of prior conversation
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// CompletionRequest contains the input for a completion call
type CompletionRequest struct {
	// Prompt is the user prompt for this turn
	Prompt string

	// History is prior conversation turns, oldest first
	History []Message

	// Language selects the response language: "cn" for Chinese,
	// anything else for English
	Language string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Config holds completion provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI-compatible or Anthropic endpoints
	APIKey string

	// BaseURL for custom endpoints (DeepSeek/Ark-compatible APIs, Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   60,
		MaxTokens: 1000,
	}
}

// systemPreamble returns the language instruction passed as the system role
func systemPreamble(language string) string {
	if language == "cn" {
		return "You are a Chinese assistant; answer the user's question in Chinese."
	}
	return "You are an English assistant; answer the user's question in English."
}
