package thread

import (
	"context"
	"strings"

	"github.com/fallacyscope/fallacyscope/internal/model"
)

// Source defines the interface for discussion-thread providers
type Source interface {
	// Name returns the source name
	Name() string

	// CanHandle checks if this source understands the given URL
	CanHandle(url string) bool

	// Fetch retrieves the thread context and its comment bodies
	Fetch(ctx context.Context, url string) (*model.Thread, error)
}

// Registry selects a source for a URL
type Registry struct {
	sources []Source
	generic Source
}

// NewRegistry creates a registry with the built-in sources
func NewRegistry(fetcher *Fetcher) *Registry {
	r := &Registry{}
	r.Register(NewRedditSource(fetcher))
	r.generic = NewGenericSource(fetcher)
	return r
}

// Register adds a source
func (r *Registry) Register(s Source) {
	r.sources = append(r.sources, s)
}

// SourceFor returns the best source for the URL, falling back to generic
func (r *Registry) SourceFor(url string) Source {
	for _, s := range r.sources {
		if s.CanHandle(url) {
			return s
		}
	}
	return r.generic
}

// Fetch resolves a source for the URL and fetches the thread through it
func (r *Registry) Fetch(ctx context.Context, url string) (*model.Thread, error) {
	return r.SourceFor(url).Fetch(ctx, url)
}

// filterComments drops empty bodies and deleted/removed placeholders
func filterComments(bodies []string) []string {
	kept := make([]string, 0, len(bodies))
	for _, body := range bodies {
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		switch strings.ToLower(body) {
		case "[deleted]", "[removed]":
			continue
		}
		kept = append(kept, body)
	}
	return kept
}
