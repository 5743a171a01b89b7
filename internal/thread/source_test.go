package thread

import (
	"testing"
	"time"
)

func testFetcher() *Fetcher {
	return NewFetcher(5*time.Second, "fallacyscope-test", 1<<20, false)
}

func TestFilterComments(t *testing.T) {
	in := []string{
		"A real comment",
		"",
		"   ",
		"[deleted]",
		"[Removed]",
		"  another one  ",
	}

	got := filterComments(in)

	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d: %v", len(got), got)
	}
	if got[0] != "A real comment" || got[1] != "another one" {
		t.Errorf("unexpected kept comments: %v", got)
	}
}

func TestRegistry_SourceFor(t *testing.T) {
	registry := NewRegistry(testFetcher())

	cases := []struct {
		url  string
		want string
	}{
		{"https://www.reddit.com/r/news/comments/abc/post/", "reddit"},
		{"https://old.reddit.com/r/news/comments/abc/post/", "reddit"},
		{"https://reddit.com/r/news/comments/abc/post/", "reddit"},
		{"https://example.com/forum/thread/42", "generic"},
		{"https://notreddit.com/r/news", "generic"},
	}
	for _, c := range cases {
		if got := registry.SourceFor(c.url).Name(); got != c.want {
			t.Errorf("SourceFor(%s) = %s, want %s", c.url, got, c.want)
		}
	}
}
