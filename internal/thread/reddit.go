package thread

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/model"
)

// RedditSource fetches a submission and its comment tree through Reddit's
// public JSON listing (the submission URL with ".json" appended)
type RedditSource struct {
	fetcher *Fetcher
}

// NewRedditSource creates a new Reddit source
func NewRedditSource(fetcher *Fetcher) *RedditSource {
	return &RedditSource{fetcher: fetcher}
}

// Name returns the source name
func (s *RedditSource) Name() string {
	return "reddit"
}

// CanHandle matches reddit.com hosts
func (s *RedditSource) CanHandle(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	return host == "reddit.com" || strings.HasSuffix(host, ".reddit.com")
}

// Reddit listing structures (only the fields we read)
type redditListing struct {
	Data struct {
		Children []redditChild `json:"children"`
	} `json:"data"`
}

type redditChild struct {
	Kind string `json:"kind"`
	Data struct {
		Title    string          `json:"title"`
		Selftext string          `json:"selftext"`
		Body     string          `json:"body"`
		Replies  json.RawMessage `json:"replies"` // empty string or nested listing
	} `json:"data"`
}

// Fetch retrieves the submission as context plus the flattened comment bodies
func (s *RedditSource) Fetch(ctx context.Context, rawURL string) (*model.Thread, error) {
	jsonURL := strings.TrimSuffix(rawURL, "/") + ".json"

	body, err := s.fetcher.Get(ctx, jsonURL, "application/json")
	if err != nil {
		return nil, fmt.Errorf("fetch thread: %w", err)
	}

	// The listing endpoint returns two listings: the submission itself,
	// then the comment tree.
	var listings []redditListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("parse thread: %w", err)
	}
	if len(listings) < 2 || len(listings[0].Data.Children) == 0 {
		return nil, fmt.Errorf("malformed thread listing")
	}

	post := listings[0].Data.Children[0].Data
	context := fmt.Sprintf("Title: %s\nBody: %s", post.Title, post.Selftext)

	var bodies []string
	collectComments(listings[1].Data.Children, &bodies)

	return &model.Thread{
		Context:  context,
		Comments: filterComments(bodies),
	}, nil
}

// collectComments walks the comment tree depth-first, flattening bodies
func collectComments(children []redditChild, out *[]string) {
	for _, child := range children {
		// "t1" is a comment; "more" stubs carry no body
		if child.Kind != "t1" {
			continue
		}
		*out = append(*out, child.Data.Body)

		if len(child.Data.Replies) == 0 {
			continue
		}
		var nested redditListing
		// Replies is the empty string when a comment has none
		if err := json.Unmarshal(child.Data.Replies, &nested); err != nil {
			continue
		}
		collectComments(nested.Data.Children, out)
	}
}
