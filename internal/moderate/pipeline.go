package moderate

import (
	"context"
	"fmt"

	"github.com/fallacyscope/fallacyscope/internal/catalog"
	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
	"github.com/fallacyscope/fallacyscope/internal/search"
)

// Options configures pipeline behavior
type Options struct {
	// Language for model responses: "cn" for Chinese, anything else English
	Language string

	// CollectEvidence toggles the evidence stage. Disabling it saves a model
	// call and a search call per detected fallacy.
	CollectEvidence bool
}

// Pipeline runs the moderation stages in sequence for one (news, comment)
// pair: detect, then - only when a fallacy was found - collect evidence and
// generate advice. Stages fail open, so accepted input never yields an error.
type Pipeline struct {
	detector  *Detector
	collector *EvidenceCollector
	advisor   *Advisor
	catalog   *catalog.Catalog
	opts      Options
}

// NewPipeline wires the three stages with shared clients
func NewPipeline(client llm.Client, searcher search.Client, cat *catalog.Catalog, opts Options) *Pipeline {
	return &Pipeline{
		detector:  NewDetector(client, cat),
		collector: NewEvidenceCollector(client, searcher, cat),
		advisor:   NewAdvisor(client, cat),
		catalog:   cat,
		opts:      opts,
	}
}

// NoFallacySentinel returns the fixed "nothing found" result text
func NoFallacySentinel(language string) string {
	if language == "cn" {
		return "未发现明显逻辑问题"
	}
	return "No obvious fallacy detected"
}

// Moderate runs the full pipeline and returns either the sentinel or
// "label\n\nadvice". Only empty input produces an error.
func (p *Pipeline) Moderate(ctx context.Context, news, comment string) (string, error) {
	if news == "" || comment == "" {
		return "", fmt.Errorf("both news and comment must be non-empty")
	}

	detection := p.detector.Run(ctx, news, comment, p.opts.Language)

	// Indeterminate collapses to the sentinel here, by policy. The detector
	// keeps the states distinct so callers of Detect can tell them apart.
	if !detection.Found() {
		return NoFallacySentinel(p.opts.Language), nil
	}

	var evidence []model.EvidenceItem
	if p.opts.CollectEvidence {
		evidence = p.collector.Run(ctx, detection.FallacyID, comment, news, p.opts.Language)
	}

	advice := p.advisor.Run(ctx, comment, detection.FallacyID, detection.Reason, evidence, p.opts.Language)

	label := p.catalog.LabelFor(detection.FallacyID)
	return label + "\n\n" + advice, nil
}

// Detect exposes the detector stage alone, for batch fan-out
func (p *Pipeline) Detect(ctx context.Context, news, comment string) model.Detection {
	return p.detector.Run(ctx, news, comment, p.opts.Language)
}

// Language returns the configured response language
func (p *Pipeline) Language() string {
	return p.opts.Language
}
