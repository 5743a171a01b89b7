package moderate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
)

// Detector asks the model whether a comment contains a fallacy from the
// catalog, which kind, and why. A single call, a single parse attempt:
// failures come back as an indeterminate outcome, never as an error.
type Detector struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// NewDetector creates a new detector stage
func NewDetector(client llm.Client, cat *catalog.Catalog) *Detector {
	return &Detector{
		client:  client,
		catalog: cat,
	}
}

// detectionPayload is the JSON shape requested from the model
type detectionPayload struct {
	Exists    bool    `json:"exists"`
	FallacyID *string `json:"fallacy_id"`
	Reason    string  `json:"reason"`
}

// Run analyzes one (news, comment) pair
func (d *Detector) Run(ctx context.Context, news, comment, language string) model.Detection {
	prompt := buildDetectorPrompt(d.catalog, news, comment)

	raw, err := d.client.Complete(ctx, llm.CompletionRequest{
		Prompt:   prompt,
		Language: language,
	})
	if err != nil {
		return model.Detection{
			Outcome: model.OutcomeIndeterminate,
			Cause:   fmt.Sprintf("model call failed: %v", err),
		}
	}

	var payload detectionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return model.Detection{
			Outcome: model.OutcomeIndeterminate,
			Cause:   fmt.Sprintf("parse model output: %v", err),
		}
	}

	if !payload.Exists {
		return model.Detection{Outcome: model.OutcomeNotFound}
	}

	id := ""
	if payload.FallacyID != nil {
		id = strings.TrimSpace(*payload.FallacyID)
	}
	if id == "null" {
		id = ""
	}
	// Ids outside the catalog are kept in the detection but resolve to the
	// unknown label downstream; they are never added to the catalog.
	return model.Detection{
		Outcome:   model.OutcomeFound,
		FallacyID: id,
		Reason:    payload.Reason,
	}
}

// buildDetectorPrompt embeds the catalog and both texts into a single prompt
func buildDetectorPrompt(cat *catalog.Catalog, news, comment string) string {
	ids := cat.IDs()

	return fmt.Sprintf(`You are a logical comment analysis assistant. Read the news context and the comment below, and decide whether the comment contains any of the following fallacies:
%s

Detailed explanations of each kind:
%s
Output a JSON object:
{
  "exists": <bool>,
  "fallacy_id": "<one of %s, or null>",
  "reason": "<short reason>"
}

News context:
<<NEWS>>
%s

Comment:
<<COMMENT>>
%s`,
		strings.Join(ids, ", "),
		cat.PromptReference(),
		strings.Join(ids, "|"),
		news,
		comment,
	)
}

// stripCodeFence removes markdown code fences and language markers the model
// may wrap its JSON answer in
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "json")
	return strings.TrimSpace(s)
}
