package moderate

import (
	"context"
	"fmt"

	"github.com/fallacyscope/fallacyscope/internal/llm"
	"github.com/fallacyscope/fallacyscope/internal/search"
)

// mockClient replays scripted completions and records every prompt it saw
type mockClient struct {
	responses []string
	err       error
	prompts   []string
}

func (m *mockClient) Name() string { return "mock" }

func (m *mockClient) IsAvailable(ctx context.Context) bool { return true }

func (m *mockClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.prompts = append(m.prompts, req.Prompt)
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock: no scripted response left")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func (m *mockClient) callCount() int { return len(m.prompts) }

// mockSearcher returns a fixed result and records queries
type mockSearcher struct {
	result  *search.Result
	err     error
	queries []string
}

func (m *mockSearcher) Search(ctx context.Context, query, language string) (*search.Result, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
