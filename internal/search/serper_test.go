package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSerperClient_RequiresKey(t *testing.T) {
	if _, err := NewSerperClient(Config{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestSerperClient_Search(t *testing.T) {
	var captured serperRequest
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("expected /search, got %s", r.URL.Path)
		}
		gotKey = r.Header.Get("X-API-KEY")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Result{
			AnswerBox: &AnswerBox{Title: "Hasty generalization", Snippet: "Too few cases.", Link: "https://example.org/hg"},
			Organic: []OrganicResult{
				{Title: "First", Link: "https://example.org/1", Position: 1},
			},
		})
	}))
	defer server.Close()

	client, err := NewSerperClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperClient: %v", err)
	}

	result, err := client.Search(context.Background(), "hasty generalization fallacy", "en")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
	if captured.Query != "hasty generalization fallacy" {
		t.Errorf("unexpected query: %q", captured.Query)
	}
	if captured.Country != "us" || captured.Lang != "en" {
		t.Errorf("expected us/en localization, got %s/%s", captured.Country, captured.Lang)
	}
	if result.AnswerBox == nil || result.AnswerBox.Link != "https://example.org/hg" {
		t.Errorf("unexpected answer box: %+v", result.AnswerBox)
	}
	if len(result.Organic) != 1 {
		t.Errorf("expected 1 organic result, got %d", len(result.Organic))
	}
}

func TestSerperClient_Search_ChineseLocalization(t *testing.T) {
	var captured serperRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(Result{})
	}))
	defer server.Close()

	client, err := NewSerperClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperClient: %v", err)
	}

	if _, err := client.Search(context.Background(), "诉诸权威", "cn"); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if captured.Country != "cn" || captured.Lang != "zh-cn" {
		t.Errorf("expected cn/zh-cn localization, got %s/%s", captured.Country, captured.Lang)
	}
}

func TestSerperClient_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "invalid key"}`))
	}))
	defer server.Close()

	client, err := NewSerperClient(Config{APIKey: "bad-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSerperClient: %v", err)
	}

	if _, err := client.Search(context.Background(), "query", "en"); err == nil {
		t.Error("expected error for 403 response")
	}
}
