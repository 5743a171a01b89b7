package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// progressEvent is one SSE frame: synthetic progress while the pipeline
// runs, then exactly one terminal event carrying the result envelope
type progressEvent struct {
	Progress int       `json:"progress"`
	Message  string    `json:"message"`
	Status   string    `json:"status"` // processing | completed | error
	Result   *envelope `json:"result,omitempty"`
}

// progressStep is one synthetic status message
type progressStep struct {
	progress int
	message  string
}

var moderateSteps = []progressStep{
	{10, "Initializing analysis..."},
	{25, "Processing comment text..."},
	{45, "Analyzing logical patterns..."},
	{65, "Evaluating fallacy indicators..."},
	{80, "Generating assessment..."},
	{95, "Finalizing results..."},
}

var batchSteps = []progressStep{
	{5, "Fetching thread content..."},
	{15, "Parsing comments structure..."},
	{35, "Analyzing comment batch..."},
	{60, "Analyzing comment batch..."},
	{85, "Aggregating analysis results..."},
	{95, "Preparing summary report..."},
}

// handleModerateStream runs the cached pipeline while emitting SSE progress
func (s *Server) handleModerateStream(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Invalid JSON body"})
		return
	}

	if req.NewsText == "" || req.CommentText == "" {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Missing parameters"})
		return
	}

	s.streamResult(w, r, moderateSteps, "Analysis", func(ctx context.Context) (string, error) {
		return s.cache.GetOrCompute(req.NewsText, req.CommentText, func() (string, error) {
			return s.moderator.Moderate(ctx, req.NewsText, req.CommentText)
		})
	})
}

// handleDetectAllStream runs the batch analyzer while emitting SSE progress
func (s *Server) handleDetectAllStream(w http.ResponseWriter, r *http.Request) {
	var req detectAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Invalid JSON body"})
		return
	}

	if req.URL == "" {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Missing URL parameter"})
		return
	}

	s.streamResult(w, r, batchSteps, "Batch analysis", func(ctx context.Context) (string, error) {
		return s.analyzer.Analyze(ctx, req.URL)
	})
}

// streamResult runs compute in the background and emits progress steps on a
// ticker until the result is ready, then exactly one terminal event.
// Progress is monotonic; the computation pace does not change the framing.
func (s *Server) streamResult(w http.ResponseWriter, r *http.Request, steps []progressStep, label string, compute func(ctx context.Context) (string, error)) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, envelope{OK: false, Msg: "Streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	type outcome struct {
		result string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := compute(r.Context())
		done <- outcome{result: result, err: err}
	}()

	writeEvent := func(ev progressEvent) {
		payload, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	ticker := time.NewTicker(1200 * time.Millisecond)
	defer ticker.Stop()

	next := 0
	for {
		select {
		case <-r.Context().Done():
			return

		case <-ticker.C:
			if next < len(steps) {
				writeEvent(progressEvent{
					Progress: steps[next].progress,
					Message:  steps[next].message,
					Status:   "processing",
				})
				next++
			}

		case out := <-done:
			if out.err != nil {
				writeEvent(progressEvent{
					Progress: 100,
					Message:  label + " failed",
					Status:   "error",
					Result:   &envelope{OK: false, Msg: fmt.Sprintf("Processing failed: %v", out.err)},
				})
				return
			}
			writeEvent(progressEvent{
				Progress: 100,
				Message:  label + " complete",
				Status:   "completed",
				Result:   &envelope{OK: true, Data: out.result},
			})
			return
		}
	}
}
