package moderate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
	"github.com/fallacyscope/fallacyscope/internal/search"
)

// maxOrganicEvidence caps how many organic results are kept
const maxOrganicEvidence = 2

// EvidenceCollector looks up 1-2 supporting references for a detected
// fallacy: one model call to produce a search keyword, one search call.
// Transient failures yield an empty list so the pipeline keeps moving.
type EvidenceCollector struct {
	client   llm.Client
	searcher search.Client
	catalog  *catalog.Catalog
}

// NewEvidenceCollector creates a new evidence stage
func NewEvidenceCollector(client llm.Client, searcher search.Client, cat *catalog.Catalog) *EvidenceCollector {
	return &EvidenceCollector{
		client:   client,
		searcher: searcher,
		catalog:  cat,
	}
}

// Run collects up to two supporting snippets for the detected kind.
// An empty fallacyID short-circuits without any network call.
func (e *EvidenceCollector) Run(ctx context.Context, fallacyID, comment, news, language string) []model.EvidenceItem {
	if fallacyID == "" {
		return nil
	}

	detail := e.catalog.DetailFor(fallacyID)

	keyword, err := e.client.Complete(ctx, llm.CompletionRequest{
		Prompt:   buildKeywordPrompt(fallacyID, detail, comment, news),
		Language: language,
	})
	if err != nil {
		return nil
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}

	result, err := e.searcher.Search(ctx, keyword, language)
	if err != nil || result == nil {
		return nil
	}

	if result.AnswerBox != nil {
		return []model.EvidenceItem{{
			Title:   result.AnswerBox.Title,
			Snippet: result.AnswerBox.Snippet,
			Link:    result.AnswerBox.Link,
		}}
	}

	items := make([]model.EvidenceItem, 0, maxOrganicEvidence)
	for _, hit := range result.Organic {
		if len(items) >= maxOrganicEvidence {
			break
		}
		items = append(items, model.EvidenceItem{
			Title:   hit.Title,
			Snippet: hit.Snippet,
			Link:    hit.Link,
		})
	}
	return items
}

// buildKeywordPrompt asks for exactly one search keyword
func buildKeywordPrompt(fallacyID string, detail catalog.Detail, comment, news string) string {
	return fmt.Sprintf(`The comment below commits a logical fallacy.
Kind: %s. Explanation: %s
Comment text: %s
Background context: %s
Generate one search keyword that would corroborate that this is indeed a fallacy.
Output the search keyword only.`,
		fallacyID, detail.Definition, comment, news)
}
