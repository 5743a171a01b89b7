package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SerperClient queries the Serper search API (google.serper.dev)
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Config holds search backend configuration
type Config struct {
	APIKey  string
	BaseURL string
	Timeout int // seconds
}

type serperRequest struct {
	Query   string `json:"q"`
	Country string `json:"gl"`
	Lang    string `json:"hl"`
}

// NewSerperClient creates a new Serper client
func NewSerperClient(config Config) (*SerperClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Serper API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://google.serper.dev"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &SerperClient{
		apiKey:  config.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Search runs a keyword query against the Serper API
func (c *SerperClient) Search(ctx context.Context, query string, language string) (*Result, error) {
	hl := "en"
	if language == "cn" {
		hl = "zh-cn"
	}

	body, err := json.Marshal(serperRequest{
		Query:   query,
		Country: countryFor(language),
		Lang:    hl,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/search", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, string(respBody))
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}

// countryFor maps the response language to a search country code
func countryFor(language string) string {
	if language == "cn" {
		return "cn"
	}
	return "us"
}
