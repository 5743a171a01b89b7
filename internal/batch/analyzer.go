package batch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
	"github.com/fallacyscope/fallacyscope/internal/worker"
)

// ThreadFetcher retrieves a discussion thread for a URL
type ThreadFetcher interface {
	Fetch(ctx context.Context, url string) (*model.Thread, error)
}

// Detector runs fallacy detection over one (news, comment) pair
type Detector interface {
	Detect(ctx context.Context, news, comment string) model.Detection
}

// Analyzer fetches a discussion thread, fans detection out over its comments
// with a bounded worker pool, and asks the model to summarize the aggregate
// pattern in plain prose
type Analyzer struct {
	threads     ThreadFetcher
	detector    Detector
	client      llm.Client
	maxComments int
	workers     int
	language    string
}

// Config bounds the fan-out
type Config struct {
	MaxComments int // comments beyond this are silently dropped
	Workers     int // concurrent in-flight detection calls
	Language    string
}

// NewAnalyzer creates a new batch analyzer
func NewAnalyzer(threads ThreadFetcher, detector Detector, client llm.Client, cfg Config) *Analyzer {
	if cfg.MaxComments <= 0 {
		cfg.MaxComments = 20
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	return &Analyzer{
		threads:     threads,
		detector:    detector,
		client:      client,
		maxComments: cfg.MaxComments,
		workers:     cfg.Workers,
		language:    cfg.Language,
	}
}

// detectJob runs one detection call inside the pool
type detectJob struct {
	detector Detector
	news     string
	comment  string
}

// detectResult wraps the detection for the pool's Result interface
type detectResult struct {
	detection model.Detection
}

func (r *detectResult) GetError() error { return nil }

// Execute runs the detection. Failed calls come back as indeterminate
// detections, so a single bad comment never aborts the batch.
func (j *detectJob) Execute(ctx context.Context) worker.Result {
	return &detectResult{detection: j.detector.Detect(ctx, j.news, j.comment)}
}

// Analyze fetches the thread at url and returns the prose summary.
// A failed thread fetch is fatal; everything after it fails open.
func (a *Analyzer) Analyze(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("thread URL must be non-empty")
	}

	thread, err := a.threads.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch thread: %w", err)
	}

	comments := thread.Comments
	if len(comments) > a.maxComments {
		comments = comments[:a.maxComments]
	}

	detections := a.detectAll(ctx, thread.Context, comments)

	summary, err := a.client.Complete(ctx, llm.CompletionRequest{
		Prompt:   buildSummaryPrompt(detections),
		Language: a.language,
	})
	if err != nil {
		return "", fmt.Errorf("summarize detections: %w", err)
	}

	return summary, nil
}

// detectAll fans detection out over the pool and returns detections aligned
// to the input comment order
func (a *Analyzer) detectAll(ctx context.Context, news string, comments []string) []model.Detection {
	if len(comments) == 0 {
		return nil
	}

	pool := worker.NewPoolWithContext(ctx, a.workers, len(comments))
	pool.Start()

	for _, comment := range comments {
		pool.Submit(&detectJob{
			detector: a.detector,
			news:     news,
			comment:  comment,
		})
	}

	results := pool.Wait()

	detections := make([]model.Detection, len(results))
	for i, result := range results {
		dr, ok := result.(*detectResult)
		if !ok {
			// The job never ran because the caller's context ended first
			detections[i] = model.Detection{
				Outcome: model.OutcomeIndeterminate,
				Cause:   "detection canceled",
			}
			continue
		}
		detections[i] = dr.detection
	}
	return detections
}

// buildSummaryPrompt serializes the detections into one summarization prompt
func buildSummaryPrompt(detections []model.Detection) string {
	serialized, err := json.Marshal(detections)
	if err != nil {
		serialized = []byte("[]")
	}

	return fmt.Sprintf(`Below are detected fallacies from a discussion thread's comment section. Please provide a brief summary of what patterns you see across comments, including the most common fallacy types and any notable caveats.

%s

Requirements: write plain natural text in paragraphs; do NOT use Markdown.`, serialized)
}
