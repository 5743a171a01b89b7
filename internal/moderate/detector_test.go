package moderate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/model"
)

func TestDetector_Run_Found(t *testing.T) {
	client := &mockClient{
		responses: []string{`{"exists": true, "fallacy_id": "hasty_generalization", "reason": "generalizes from one street"}`},
	}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "City expands bike lanes.", "Everyone on my street hates it, so the whole city opposes it.", "en")

	if detection.Outcome != model.OutcomeFound {
		t.Errorf("Expected found outcome, got %s", detection.Outcome)
	}
	if detection.FallacyID != "hasty_generalization" {
		t.Errorf("Expected fallacy_id hasty_generalization, got %q", detection.FallacyID)
	}
	if detection.Reason == "" {
		t.Error("Expected a reason")
	}
}

func TestDetector_Run_NotFound(t *testing.T) {
	client := &mockClient{
		responses: []string{`{"exists": false, "fallacy_id": null, "reason": ""}`},
	}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "News.", "A perfectly reasonable remark.", "en")

	if detection.Outcome != model.OutcomeNotFound {
		t.Errorf("Expected not_found outcome, got %s", detection.Outcome)
	}
	if detection.Found() {
		t.Error("Found() should be false for not_found")
	}
}

func TestDetector_Run_CodeFencedOutput(t *testing.T) {
	// Models routinely wrap JSON in a markdown fence despite instructions
	client := &mockClient{
		responses: []string{"```json\n{\"exists\": true, \"fallacy_id\": \"ad_hominem\", \"reason\": \"attacks the author\"}\n```"},
	}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "News.", "Typical nonsense from a paid shill.", "en")

	if detection.Outcome != model.OutcomeFound {
		t.Errorf("Expected found outcome, got %s", detection.Outcome)
	}
	if detection.FallacyID != "ad_hominem" {
		t.Errorf("Expected fallacy_id ad_hominem, got %q", detection.FallacyID)
	}
}

func TestDetector_Run_MalformedOutputIsIndeterminate(t *testing.T) {
	client := &mockClient{
		responses: []string{"I think the comment is probably fine, no JSON for you"},
	}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "News.", "Comment.", "en")

	if detection.Outcome != model.OutcomeIndeterminate {
		t.Errorf("Expected indeterminate outcome, got %s", detection.Outcome)
	}
	if detection.Cause == "" {
		t.Error("Expected a cause describing the parse failure")
	}
	if detection.Found() {
		t.Error("Found() should be false for indeterminate")
	}
}

func TestDetector_Run_ModelErrorIsIndeterminate(t *testing.T) {
	client := &mockClient{err: fmt.Errorf("connection refused")}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "News.", "Comment.", "en")

	if detection.Outcome != model.OutcomeIndeterminate {
		t.Errorf("Expected indeterminate outcome, got %s", detection.Outcome)
	}
	if detection.Cause == "" {
		t.Error("Expected a cause describing the call failure")
	}
}

func TestDetector_Run_NullStringID(t *testing.T) {
	// Some models emit the literal string "null" instead of a JSON null
	client := &mockClient{
		responses: []string{`{"exists": true, "fallacy_id": "null", "reason": "unsure"}`},
	}
	detector := NewDetector(client, catalog.Default())

	detection := detector.Run(context.Background(), "News.", "Comment.", "en")

	if detection.FallacyID != "" {
		t.Errorf("Expected empty fallacy_id for literal null, got %q", detection.FallacyID)
	}
}

func TestDetector_Run_PromptContainsInputs(t *testing.T) {
	client := &mockClient{
		responses: []string{`{"exists": false, "fallacy_id": null, "reason": ""}`},
	}
	detector := NewDetector(client, catalog.Default())

	detector.Run(context.Background(), "the news text", "the comment text", "en")

	if len(client.prompts) != 1 {
		t.Fatalf("Expected exactly one model call, got %d", len(client.prompts))
	}
	prompt := client.prompts[0]
	for _, want := range []string{"the news text", "the comment text", "hasty_generalization", "<<NEWS>>", "<<COMMENT>>"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripCodeFence(c.in); got != c.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
