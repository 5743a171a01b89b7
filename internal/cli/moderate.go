package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	moderateNews       string
	moderateComment    string
	moderateLanguage   string
	moderateNoEvidence bool
	moderateTimeout    time.Duration
)

// moderateCmd represents the moderate command
var moderateCmd = &cobra.Command{
	Use:   "moderate",
	Short: "Analyze one comment against its news context",
	Long: `Moderate runs the full pipeline for a single (news, comment) pair:
detect a fallacy, collect supporting evidence, and generate a tactful
suggestion for the commenter.

Example:
  fallacyscope moderate \
    --news "City council approves new bike lanes." \
    --comment "Everyone on my street hates it, so the whole city opposes it."`,
	RunE: runModerate,
}

func init() {
	rootCmd.AddCommand(moderateCmd)

	moderateCmd.Flags().StringVar(&moderateNews, "news", "", "news context text (required)")
	moderateCmd.Flags().StringVar(&moderateComment, "comment", "", "comment text (required)")
	moderateCmd.Flags().StringVar(&moderateLanguage, "language", "en", "response language (cn or en)")
	moderateCmd.Flags().BoolVar(&moderateNoEvidence, "no-evidence", false, "skip the evidence stage")
	moderateCmd.Flags().DurationVar(&moderateTimeout, "timeout", 3*time.Minute, "overall timeout")

	_ = moderateCmd.MarkFlagRequired("news")
	_ = moderateCmd.MarkFlagRequired("comment")
}

func runModerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("language") {
		cfg.Moderation.Language = moderateLanguage
	}
	if moderateNoEvidence {
		cfg.Moderation.CollectEvidence = false
	}
	applyEnv(cfg)

	pipeline, client, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), moderateTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Provider: %s\n", client.Name())
	}

	result, err := pipeline.Moderate(ctx, moderateNews, moderateComment)
	if err != nil {
		return fmt.Errorf("moderate failed: %w", err)
	}

	fmt.Println(result)
	return nil
}
