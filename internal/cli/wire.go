package cli

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/fallacyscope/fallacyscope/internal/batch"
	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
	"github.com/fallacyscope/fallacyscope/internal/moderate"
	"github.com/fallacyscope/fallacyscope/internal/search"
	"github.com/fallacyscope/fallacyscope/internal/thread"
)

// loadConfig builds the effective configuration: built-in defaults overlaid
// with whatever the viper config file provided. Flags and environment are
// applied afterwards by the individual commands.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config values: %v\n", err)
	}
	return cfg
}

// applyEnv fills API keys and endpoints from environment variables when the
// config file did not already provide them.
func applyEnv(cfg *model.Config) {
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "ollama":
			if base := os.Getenv("OLLAMA_BASE_URL"); base != "" {
				cfg.LLM.BaseURL = base
			}
		default:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
					cfg.LLM.APIKey = key
					if cfg.LLM.BaseURL == "" {
						cfg.LLM.BaseURL = "https://api.deepseek.com"
					}
				}
			}
		}
	}
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("SERPER_API_KEY")
	}
}

// buildPipeline wires the moderation pipeline from configuration
func buildPipeline(cfg *model.Config) (*moderate.Pipeline, llm.Client, error) {
	client, err := llm.NewClient(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	opts := moderate.Options{
		Language:        cfg.Moderation.Language,
		CollectEvidence: cfg.Moderation.CollectEvidence,
	}

	var searcher search.Client
	if cfg.Search.APIKey != "" {
		searcher, err = search.NewSerperClient(search.Config{
			APIKey:  cfg.Search.APIKey,
			BaseURL: cfg.Search.BaseURL,
			Timeout: cfg.Search.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("initialize search client: %w", err)
		}
	} else if opts.CollectEvidence {
		fmt.Fprintf(os.Stderr, "Warning: SERPER_API_KEY not set; evidence collection disabled\n")
		opts.CollectEvidence = false
	}

	return moderate.NewPipeline(client, searcher, catalog.Default(), opts), client, nil
}

// buildAnalyzer wires the batch analyzer around a pipeline
func buildAnalyzer(cfg *model.Config, pipeline *moderate.Pipeline, client llm.Client) *batch.Analyzer {
	fetcher := thread.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, cfg.HTTP.RespectRobots)
	threads := thread.NewCachedRegistry(thread.NewRegistry(fetcher), cfg.Cache.ThreadTTL)

	return batch.NewAnalyzer(threads, pipeline, client, batch.Config{
		MaxComments: cfg.Batch.MaxComments,
		Workers:     cfg.Batch.Workers,
		Language:    cfg.Moderation.Language,
	})
}
