package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// moderateRequest is the body of /moderate and /moderate_stream
type moderateRequest struct {
	NewsText    string `json:"news_text"`
	CommentText string `json:"comment_text"`
	Language    string `json:"language,omitempty"`
}

// detectAllRequest is the body of /detect_all and /detect_all_stream
type detectAllRequest struct {
	URL string `json:"url"`
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"message": "fallacyscope service is healthy",
	})
}

// handleModerate runs the cached moderation pipeline synchronously
func (s *Server) handleModerate(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Invalid JSON body"})
		return
	}

	if req.NewsText == "" || req.CommentText == "" {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Both news_text and comment_text must be provided."})
		return
	}

	result, err := s.moderate(r, req)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, envelope{OK: false, Msg: fmt.Sprintf("Processing failed: %v", err)})
		return
	}

	respondJSON(w, http.StatusOK, envelope{OK: true, Data: result})
}

// handleDetectAll runs the batch analyzer synchronously
func (s *Server) handleDetectAll(w http.ResponseWriter, r *http.Request) {
	var req detectAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Invalid JSON body"})
		return
	}

	if req.URL == "" {
		respondJSON(w, http.StatusBadRequest, envelope{OK: false, Msg: "Missing URL parameter"})
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, envelope{OK: false, Msg: fmt.Sprintf("Processing failed: %v", err)})
		return
	}

	respondJSON(w, http.StatusOK, envelope{OK: true, Data: result})
}

// moderate routes a request through the result cache into the pipeline
func (s *Server) moderate(r *http.Request, req moderateRequest) (string, error) {
	return s.cache.GetOrCompute(req.NewsText, req.CommentText, func() (string, error) {
		return s.moderator.Moderate(r.Context(), req.NewsText, req.CommentText)
	})
}
