package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	analyzeLanguage string
	analyzeTimeout  time.Duration
	analyzeMax      int
	analyzeWorkers  int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <thread-url>",
	Short: "Analyze a whole discussion thread for fallacy patterns",
	Long: `Analyze fetches a discussion thread (Reddit submissions are supported
natively; other pages fall back to generic HTML extraction), runs fallacy
detection concurrently over its comments, and prints a prose summary of the
dominant patterns.

Example:
  fallacyscope analyze https://reddit.com/r/news/comments/abc123/some_post/`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeLanguage, "language", "en", "response language (cn or en)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall timeout")
	analyzeCmd.Flags().IntVar(&analyzeMax, "max-comments", 20, "max comments analyzed per thread")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 10, "concurrent detection calls")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	url := args[0]

	cfg := loadConfig()
	if cmd.Flags().Changed("language") {
		cfg.Moderation.Language = analyzeLanguage
	}
	// Batch analysis only runs the detector, so the evidence stage
	// (and its search key) is not needed.
	cfg.Moderation.CollectEvidence = false
	if cmd.Flags().Changed("max-comments") {
		cfg.Batch.MaxComments = analyzeMax
	}
	if cmd.Flags().Changed("workers") {
		cfg.Batch.Workers = analyzeWorkers
	}
	applyEnv(cfg)

	pipeline, client, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	analyzer := buildAnalyzer(cfg, pipeline, client)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", url)
		fmt.Fprintf(os.Stderr, "Max comments: %d, workers: %d\n", cfg.Batch.MaxComments, cfg.Batch.Workers)
	}

	summary, err := analyzer.Analyze(ctx, url)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	fmt.Println(summary)
	return nil
}
