package cli

import (
	"fmt"
	"os"

	"github.com/fallacyscope/fallacyscope/internal/moderate"
	"github.com/fallacyscope/fallacyscope/internal/server"
	"github.com/fallacyscope/fallacyscope/internal/worker"
	"github.com/spf13/cobra"
)

var (
	serveAddr       string
	serveLanguage   string
	serveNoEvidence bool
	serveCacheSize  int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the moderation HTTP API",
	Long: `Serve exposes the moderation pipeline over HTTP:

  POST /moderate           analyze one (news, comment) pair
  POST /moderate_stream    same, with SSE progress events
  POST /detect_all         analyze a whole discussion thread by URL
  POST /detect_all_stream  same, with SSE progress events
  GET  /                   liveness probe

Results are cached per exact (news, comment) pair, and requests are
rate-limited per caller address.

Example:
  fallacyscope serve --addr :5000
  fallacyscope serve --language cn --no-evidence`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "listen address")
	serveCmd.Flags().StringVar(&serveLanguage, "language", "en", "response language (cn or en)")
	serveCmd.Flags().BoolVar(&serveNoEvidence, "no-evidence", false, "skip the evidence stage (saves latency and cost)")
	serveCmd.Flags().IntVar(&serveCacheSize, "cache-size", 4096, "max cached moderation results")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("language") {
		cfg.Moderation.Language = serveLanguage
	}
	if serveNoEvidence {
		cfg.Moderation.CollectEvidence = false
	}
	if cmd.Flags().Changed("cache-size") {
		cfg.Cache.Capacity = serveCacheSize
	}
	cfg.Output.Verbose = verbose
	applyEnv(cfg)

	pipeline, client, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	analyzer := buildAnalyzer(cfg, pipeline, client)

	cache, err := moderate.NewResultCache(cfg.Cache.Capacity)
	if err != nil {
		return fmt.Errorf("create result cache: %w", err)
	}

	limiter := worker.NewLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)

	if verbose {
		fmt.Fprintf(os.Stderr, "Provider: %s\n", client.Name())
		fmt.Fprintf(os.Stderr, "Language: %s\n", cfg.Moderation.Language)
		fmt.Fprintf(os.Stderr, "Evidence collection: %v\n", cfg.Moderation.CollectEvidence)
	}

	srv := server.NewServer(pipeline, analyzer, cache, limiter)

	fmt.Printf("fallacyscope listening on %s\n", cfg.Server.Addr)
	return srv.Run(cfg.Server.Addr)
}
