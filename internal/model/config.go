package model

import "time"

// Config is the complete fallacyscope configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	Search     SearchConfig     `yaml:"search"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Batch      BatchConfig      `yaml:"batch"`
	Moderation ModerationConfig `yaml:"moderation"`
	HTTP       HTTPConfig       `yaml:"http"`
	Output     OutputConfig     `yaml:"output"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":5000"
}

// LLMConfig configures the language model provider
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for OpenAI/DeepSeek/Anthropic
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for OpenAI-compatible endpoints (DeepSeek, Ark) or Ollama
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for API requests
	Timeout int `yaml:"timeout"` // seconds

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens"`
}

// SearchConfig configures the web search backend
type SearchConfig struct {
	// APIKey for the Serper search API
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for the search endpoint (default https://google.serper.dev)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for search requests
	Timeout int `yaml:"timeout"` // seconds
}

// CacheConfig configures the moderation result cache
type CacheConfig struct {
	// Capacity is the maximum number of cached (news, comment) results
	Capacity int `yaml:"capacity"`

	// ThreadTTL controls how long fetched discussion threads are reused
	ThreadTTL time.Duration `yaml:"thread_ttl"`
}

// RateLimitConfig configures per-address request throttling
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"` // sustained requests per second per address
	Burst     int     `yaml:"burst"`      // burst allowance per address
}

// BatchConfig configures thread-wide batch analysis
type BatchConfig struct {
	// MaxComments caps how many comments of a thread are analyzed
	MaxComments int `yaml:"max_comments"`

	// Workers is the number of concurrent detection calls
	Workers int `yaml:"workers"`
}

// ModerationConfig configures pipeline behavior
type ModerationConfig struct {
	// Language for model responses: "cn" for Chinese, anything else English
	Language string `yaml:"language"`

	// CollectEvidence toggles the evidence stage (disable to save latency/cost)
	CollectEvidence bool `yaml:"collect_evidence"`
}

// HTTPConfig configures outbound HTTP fetching (thread sources)
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":5000",
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "",
			Timeout:   60,
			MaxTokens: 1000,
		},
		Search: SearchConfig{
			Timeout: 10,
		},
		Cache: CacheConfig{
			Capacity:  4096,
			ThreadTTL: 5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			PerSecond: 0.3, // ~3 requests per 10 seconds, per address
			Burst:     3,
		},
		Batch: BatchConfig{
			MaxComments: 20,
			Workers:     10,
		},
		Moderation: ModerationConfig{
			Language:        "en",
			CollectEvidence: true,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Fallacyscope/0.1 (+https://github.com/fallacyscope/fallacyscope)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Output: OutputConfig{},
	}
}
