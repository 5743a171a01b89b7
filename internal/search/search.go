package search

import "context"

// Client defines the interface for keyword search backends
type Client interface {
	// Search runs a keyword query and returns structured results
	Search(ctx context.Context, query string, language string) (*Result, error)
}

// Result is a structured search response
type Result struct {
	// AnswerBox is the featured answer if the backend returned one;
	// treated as higher-confidence than the organic list
	AnswerBox *AnswerBox `json:"answerBox,omitempty"`

	// Organic is the list of regular results
	Organic []OrganicResult `json:"organic,omitempty"`
}

// AnswerBox is a featured-answer snippet
type AnswerBox struct {
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Link    string `json:"link,omitempty"`
}

// OrganicResult is one regular search hit
type OrganicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet,omitempty"`
	Date     string `json:"date,omitempty"`
	Position int    `json:"position,omitempty"`
}
