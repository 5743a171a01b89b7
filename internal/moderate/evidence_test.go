package moderate

import (
	"context"
	"fmt"
	"testing"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/search"
)

func TestEvidenceCollector_Run_EmptyIDShortCircuits(t *testing.T) {
	client := &mockClient{responses: []string{"should never be used"}}
	searcher := &mockSearcher{}
	collector := NewEvidenceCollector(client, searcher, catalog.Default())

	items := collector.Run(context.Background(), "", "comment", "news", "en")

	if items != nil {
		t.Errorf("Expected nil evidence for empty id, got %v", items)
	}
	if client.callCount() != 0 {
		t.Errorf("Expected no model calls, got %d", client.callCount())
	}
	if len(searcher.queries) != 0 {
		t.Errorf("Expected no search calls, got %d", len(searcher.queries))
	}
}

func TestEvidenceCollector_Run_AnswerBoxWins(t *testing.T) {
	client := &mockClient{responses: []string{"hasty generalization sample size"}}
	searcher := &mockSearcher{
		result: &search.Result{
			AnswerBox: &search.AnswerBox{Title: "Hasty generalization", Snippet: "A conclusion from too few cases.", Link: "https://example.org/hg"},
			Organic: []search.OrganicResult{
				{Title: "ignored", Snippet: "ignored", Link: "https://example.org/ignored"},
			},
		},
	}
	collector := NewEvidenceCollector(client, searcher, catalog.Default())

	items := collector.Run(context.Background(), "hasty_generalization", "comment", "news", "en")

	if len(items) != 1 {
		t.Fatalf("Expected exactly one item from the answer box, got %d", len(items))
	}
	if items[0].Link != "https://example.org/hg" {
		t.Errorf("Expected answer box link, got %q", items[0].Link)
	}
}

func TestEvidenceCollector_Run_OrganicCapped(t *testing.T) {
	client := &mockClient{responses: []string{"keyword"}}
	searcher := &mockSearcher{
		result: &search.Result{
			Organic: []search.OrganicResult{
				{Title: "first", Link: "https://example.org/1"},
				{Title: "second", Link: "https://example.org/2"},
				{Title: "third", Link: "https://example.org/3"},
			},
		},
	}
	collector := NewEvidenceCollector(client, searcher, catalog.Default())

	items := collector.Run(context.Background(), "ad_hominem", "comment", "news", "en")

	if len(items) != 2 {
		t.Fatalf("Expected 2 organic items, got %d", len(items))
	}
	if items[0].Title != "first" || items[1].Title != "second" {
		t.Errorf("Expected first two organic hits in order, got %v", items)
	}
}

func TestEvidenceCollector_Run_SearchFailureIsEmpty(t *testing.T) {
	client := &mockClient{responses: []string{"keyword"}}
	searcher := &mockSearcher{err: fmt.Errorf("quota exceeded")}
	collector := NewEvidenceCollector(client, searcher, catalog.Default())

	items := collector.Run(context.Background(), "ad_hominem", "comment", "news", "en")

	if items != nil {
		t.Errorf("Expected nil on search failure, got %v", items)
	}
}

func TestEvidenceCollector_Run_KeywordFailureIsEmpty(t *testing.T) {
	client := &mockClient{err: fmt.Errorf("timeout")}
	searcher := &mockSearcher{}
	collector := NewEvidenceCollector(client, searcher, catalog.Default())

	items := collector.Run(context.Background(), "ad_hominem", "comment", "news", "en")

	if items != nil {
		t.Errorf("Expected nil on keyword failure, got %v", items)
	}
	if len(searcher.queries) != 0 {
		t.Errorf("Expected no search call after keyword failure, got %d", len(searcher.queries))
	}
}
