package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/model"
)

// mockThreads returns a fixed thread
type mockThreads struct {
	thread *model.Thread
	err    error
}

func (m *mockThreads) Fetch(ctx context.Context, url string) (*model.Thread, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.thread, nil
}

// mockDetector echoes each comment back in its detection reason. An optional
// per-call delay scrambles completion order.
type mockDetector struct {
	delays    map[string]time.Duration
	calls     int32
	deadlines int32 // calls whose context carried a deadline
}

func (m *mockDetector) Detect(ctx context.Context, news, comment string) model.Detection {
	atomic.AddInt32(&m.calls, 1)
	if _, ok := ctx.Deadline(); ok {
		atomic.AddInt32(&m.deadlines, 1)
	}
	if d, ok := m.delays[comment]; ok {
		time.Sleep(d)
	}
	return model.Detection{
		Outcome:   model.OutcomeFound,
		FallacyID: "hasty_generalization",
		Reason:    comment,
	}
}

// mockSummarizer captures the summary prompt and returns fixed prose
type mockSummarizer struct {
	prompt  string
	summary string
	err     error
}

func (m *mockSummarizer) Name() string { return "mock" }

func (m *mockSummarizer) IsAvailable(ctx context.Context) bool { return true }

func (m *mockSummarizer) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.prompt = req.Prompt
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

func TestAnalyzer_Analyze_Summary(t *testing.T) {
	threads := &mockThreads{thread: &model.Thread{
		Context:  "Title: Bike lanes\nBody: The city adds lanes.",
		Comments: []string{"comment a", "comment b"},
	}}
	detector := &mockDetector{}
	summarizer := &mockSummarizer{summary: "Most comments generalize hastily."}

	analyzer := NewAnalyzer(threads, detector, summarizer, Config{Language: "en"})

	summary, err := analyzer.Analyze(context.Background(), "https://example.org/thread")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if summary != "Most comments generalize hastily." {
		t.Errorf("Expected the model's prose summary, got %q", summary)
	}
	if n := atomic.LoadInt32(&detector.calls); n != 2 {
		t.Errorf("Expected 2 detection calls, got %d", n)
	}
	if !strings.Contains(summarizer.prompt, "do NOT use Markdown") {
		t.Error("Summary prompt should forbid Markdown")
	}
}

func TestAnalyzer_Analyze_EmptyURL(t *testing.T) {
	analyzer := NewAnalyzer(&mockThreads{}, &mockDetector{}, &mockSummarizer{}, Config{})

	if _, err := analyzer.Analyze(context.Background(), ""); err == nil {
		t.Error("Expected error for empty URL")
	}
}

func TestAnalyzer_Analyze_FetchFailureIsFatal(t *testing.T) {
	threads := &mockThreads{err: fmt.Errorf("404 not found")}
	detector := &mockDetector{}
	analyzer := NewAnalyzer(threads, detector, &mockSummarizer{}, Config{})

	_, err := analyzer.Analyze(context.Background(), "https://example.org/missing")
	if err == nil {
		t.Fatal("Expected error when the thread fetch fails")
	}
	if !strings.Contains(err.Error(), "fetch thread") {
		t.Errorf("Expected fetch context in error, got %v", err)
	}
	if atomic.LoadInt32(&detector.calls) != 0 {
		t.Error("No detection should run after a failed fetch")
	}
}

func TestAnalyzer_Analyze_CapsComments(t *testing.T) {
	comments := make([]string, 25)
	for i := range comments {
		comments[i] = fmt.Sprintf("comment %d", i)
	}
	threads := &mockThreads{thread: &model.Thread{Context: "news", Comments: comments}}
	detector := &mockDetector{}
	analyzer := NewAnalyzer(threads, detector, &mockSummarizer{summary: "ok"}, Config{MaxComments: 20, Workers: 10})

	if _, err := analyzer.Analyze(context.Background(), "https://example.org/big"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if n := atomic.LoadInt32(&detector.calls); n != 20 {
		t.Errorf("Expected detection capped at 20, got %d", n)
	}
}

func TestAnalyzer_DetectAll_InputOrderDespiteCompletionOrder(t *testing.T) {
	// First-submitted comments finish last; detections must still line up
	// with the input comment order.
	comments := []string{"slow one", "medium one", "fast one"}
	detector := &mockDetector{delays: map[string]time.Duration{
		"slow one":   60 * time.Millisecond,
		"medium one": 30 * time.Millisecond,
		"fast one":   0,
	}}
	analyzer := NewAnalyzer(&mockThreads{}, detector, &mockSummarizer{}, Config{Workers: 3})

	detections := analyzer.detectAll(context.Background(), "news", comments)

	if len(detections) != 3 {
		t.Fatalf("Expected 3 detections, got %d", len(detections))
	}
	for i, comment := range comments {
		if detections[i].Reason != comment {
			t.Errorf("Position %d: expected detection for %q, got %q", i, comment, detections[i].Reason)
		}
	}
}

func TestAnalyzer_DetectAll_CallerContextReachesJobs(t *testing.T) {
	detector := &mockDetector{}
	analyzer := NewAnalyzer(&mockThreads{}, detector, &mockSummarizer{}, Config{Workers: 2})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	analyzer.detectAll(ctx, "news", []string{"a", "b", "c"})

	// Every detection call must see the caller's deadline
	if n := atomic.LoadInt32(&detector.deadlines); n != 3 {
		t.Errorf("Expected 3 detection calls carrying the deadline, got %d", n)
	}
}

func TestAnalyzer_DetectAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analyzer := NewAnalyzer(&mockThreads{}, &mockDetector{}, &mockSummarizer{}, Config{Workers: 2})
	detections := analyzer.detectAll(ctx, "news", []string{"a", "b"})

	// Slots for jobs the pool dropped come back indeterminate, never panic
	if len(detections) != 2 {
		t.Fatalf("Expected 2 detections, got %d", len(detections))
	}
	for i, d := range detections {
		if d.Outcome != model.OutcomeFound && d.Outcome != model.OutcomeIndeterminate {
			t.Errorf("Detection %d: unexpected outcome %s", i, d.Outcome)
		}
	}
}

func TestAnalyzer_Analyze_SummaryFailure(t *testing.T) {
	threads := &mockThreads{thread: &model.Thread{Context: "news", Comments: []string{"c"}}}
	summarizer := &mockSummarizer{err: fmt.Errorf("model down")}
	analyzer := NewAnalyzer(threads, &mockDetector{}, summarizer, Config{})

	_, err := analyzer.Analyze(context.Background(), "https://example.org/t")
	if err == nil {
		t.Fatal("Expected error when summarization fails")
	}
	if !strings.Contains(err.Error(), "summarize detections") {
		t.Errorf("Expected summarize context in error, got %v", err)
	}
}

func TestBuildSummaryPrompt_SerializesDetections(t *testing.T) {
	detections := []model.Detection{
		{Outcome: model.OutcomeFound, FallacyID: "false_dilemma", Reason: "two options only"},
		{Outcome: model.OutcomeNotFound},
	}

	prompt := buildSummaryPrompt(detections)

	serialized, _ := json.Marshal(detections)
	if !strings.Contains(prompt, string(serialized)) {
		t.Error("Prompt should embed the serialized detections")
	}
}
