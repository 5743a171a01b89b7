package moderate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
)

// Advisor produces a short, non-confrontational suggestion for the commenter,
// with collected evidence embedded as inline links
type Advisor struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// NewAdvisor creates a new advice stage
func NewAdvisor(client llm.Client, cat *catalog.Catalog) *Advisor {
	return &Advisor{
		client:  client,
		catalog: cat,
	}
}

// Run generates the suggestion text. An unresolvable id falls back to the
// unknown-type label; a failed model call falls back to a fixed gentle
// suggestion rather than an error.
func (a *Advisor) Run(ctx context.Context, comment, fallacyID, reason string, evidence []model.EvidenceItem, language string) string {
	label := a.catalog.LabelFor(fallacyID)

	advice, err := a.client.Complete(ctx, llm.CompletionRequest{
		Prompt:   buildAdvicePrompt(label, reason, comment, evidence),
		Language: language,
	})
	if err != nil {
		return fallbackAdvice(label, language)
	}
	return strings.TrimSpace(advice)
}

// buildAdvicePrompt instructs an empathetic, bounded-length suggestion
func buildAdvicePrompt(label, reason, comment string, evidence []model.EvidenceItem) string {
	return fmt.Sprintf(`You are a friendly comment-section moderator. Without triggering defensiveness, give the commenter below a warm suggestion (at most 120 words) that:
1. first acknowledges their feelings or underlying concern;
2. gently points out the logical fallacy they may have committed: %s (%s);
3. proposes a friendly way to verify or rethink the point.
Avoid accusatory phrases like "you are wrong"; prefer wording like "maybe you could...".
Embed the supporting references below as inline links where they help, and do not invent links that are not listed.
Comment:
%s
Supporting references found on the web:
%s
Output the warm suggestion.`,
		label, reason, comment, renderEvidence(evidence))
}

// renderEvidence serializes evidence items for the prompt
func renderEvidence(items []model.EvidenceItem) string {
	if len(items) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, item := range items {
		if item.Title != "" {
			b.WriteString(item.Title)
			b.WriteString(": ")
		}
		b.WriteString(item.Snippet)
		if item.Link != "" {
			b.WriteString(" (")
			b.WriteString(item.Link)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// fallbackAdvice is the fail-open suggestion used when the model is unreachable
func fallbackAdvice(label, language string) string {
	if language == "cn" {
		return fmt.Sprintf("也许你可以再查证一下这个观点，它可能涉及%s。", label)
	}
	return fmt.Sprintf("Maybe you could double-check this point; it may involve a %s pattern.", label)
}
