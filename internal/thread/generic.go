package thread

import (
	"context"
	"fmt"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/model"
	"golang.org/x/net/html"
)

// minCommentLength filters out navigation fragments and boilerplate
const minCommentLength = 20

// GenericSource is the fallback for discussion pages without a dedicated
// source: the page title becomes the context, paragraph and list-item text
// blocks become the comments
type GenericSource struct {
	fetcher *Fetcher
}

// NewGenericSource creates a new generic source
func NewGenericSource(fetcher *Fetcher) *GenericSource {
	return &GenericSource{fetcher: fetcher}
}

// Name returns the source name
func (s *GenericSource) Name() string {
	return "generic"
}

// CanHandle always returns true (fallback source)
func (s *GenericSource) CanHandle(url string) bool {
	return true
}

// Fetch parses the page HTML into a thread
func (s *GenericSource) Fetch(ctx context.Context, rawURL string) (*model.Thread, error) {
	body, err := s.fetcher.Get(ctx, rawURL, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	title := findTitle(doc)
	if title == "" {
		title = rawURL
	}

	var bodies []string
	collectTextBlocks(doc, &bodies)

	return &model.Thread{
		Context:  "Title: " + title,
		Comments: filterComments(bodies),
	}, nil
}

// findTitle returns the document's <title> text
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return strings.TrimSpace(n.FirstChild.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// collectTextBlocks gathers <p> and <li> texts long enough to be comments
func collectTextBlocks(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "li") {
		text := strings.TrimSpace(nodeText(n))
		if len(text) >= minCommentLength {
			*out = append(*out, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextBlocks(c, out)
	}
}

// nodeText extracts the concatenated text content of a node
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
