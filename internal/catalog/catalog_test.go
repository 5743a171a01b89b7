package catalog

import (
	"strings"
	"testing"
)

func TestDefault_DetectableKinds(t *testing.T) {
	cat := Default()

	ids := cat.IDs()
	if len(ids) != 8 {
		t.Fatalf("Expected 8 detectable kinds, got %d", len(ids))
	}

	// Order is fixed and part of the prompt contract
	expected := []string{
		"appeal_to_authority",
		"appeal_to_majority",
		"appeal_to_nature",
		"appeal_to_tradition",
		"appeal_to_worse",
		"false_dilemma",
		"hasty_generalization",
		"slippery_slope",
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("Kind %d: expected %s, got %s", i, id, ids[i])
		}
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("Duplicate id: %s", id)
		}
		seen[id] = true
	}
}

func TestCatalog_LabelFor(t *testing.T) {
	cat := Default()

	if got := cat.LabelFor("hasty_generalization"); got != "Hasty Generalization" {
		t.Errorf("Expected Hasty Generalization, got %q", got)
	}
	if got := cat.LabelFor("no_such_kind"); got != UnknownLabel {
		t.Errorf("Expected %q for unknown id, got %q", UnknownLabel, got)
	}
	if got := cat.LabelFor(""); got != UnknownLabel {
		t.Errorf("Expected %q for empty id, got %q", UnknownLabel, got)
	}
}

func TestCatalog_Has(t *testing.T) {
	cat := Default()

	if !cat.Has("false_dilemma") {
		t.Error("Expected false_dilemma to be detectable")
	}
	// Reference-only entries are prompt context, not detectable kinds
	if cat.Has("ad_hominem") {
		t.Error("ad_hominem is reference-only and must not be detectable")
	}
}

func TestCatalog_DetailFor(t *testing.T) {
	cat := Default()

	detail := cat.DetailFor("slippery_slope")
	if detail.Definition == "" {
		t.Error("Expected a definition for slippery_slope")
	}
	if len(detail.Examples) == 0 {
		t.Error("Expected examples for slippery_slope")
	}

	empty := cat.DetailFor("no_such_kind")
	if empty.Definition != "" || len(empty.Examples) != 0 {
		t.Error("Expected empty detail for unknown id")
	}
}

func TestCatalog_PromptReference(t *testing.T) {
	ref := Default().PromptReference()

	// Every reference entry, detectable or not, must appear
	for _, label := range []string{"Hasty Generalization", "Ad Hominem", "Sunk Cost", "Circular Reasoning"} {
		if !strings.Contains(ref, label) {
			t.Errorf("Prompt reference missing %q", label)
		}
	}
	if !strings.Contains(ref, "Examples:") {
		t.Error("Prompt reference should include examples")
	}
}
