package folio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eringen/folio/content"
)

type fakeSource struct {
	mu    sync.Mutex
	posts []content.Post
	err   error
	loads int
}

func (f *fakeSource) LoadPosts() ([]content.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]content.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func testPost(file, title, date string, tags ...string) content.Post {
	return content.Post{
		FilePath: file,
		Meta: content.Meta{
			Title:       title,
			Summary:     "Summary of " + title,
			PublishedAt: date,
			Tags:        tags,
			ReadingTime: content.ReadingTime{Text: "1 min read", Minutes: 1},
		},
		Source: []byte("Body of " + title),
	}
}

func draft(p content.Post) content.Post {
	p.Meta.Draft = true
	return p
}

func samplePosts() []content.Post {
	return []content.Post{
		testPost("springs.mdx", "Springs in motion", "2024-03-01", "Animation", "css"),
		draft(testPost("secret.md", "Secret draft", "2024-02-15", "go")),
		testPost("go-tips.md", "Go tips", "2024-02-01", "go"),
		testPost("hello-world.mdx", "Hello world", "2024-01-01"),
	}
}

func TestPostCacheListPosts(t *testing.T) {
	src := &fakeSource{posts: samplePosts()}
	c := NewPostCache(src, time.Minute)

	posts, err := c.ListPosts("", false)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("ListPosts returned %d posts, want 3 without drafts", len(posts))
	}
	if posts[0].Slug() != "springs" || posts[2].Slug() != "hello-world" {
		t.Errorf("order changed: %s ... %s", posts[0].Slug(), posts[2].Slug())
	}

	all, _ := c.ListPosts("", true)
	if len(all) != 4 {
		t.Errorf("ListPosts with drafts returned %d, want 4", len(all))
	}
	if src.loads != 1 {
		t.Errorf("source loaded %d times, want 1 while fresh", src.loads)
	}
}

func TestPostCacheTagFilter(t *testing.T) {
	c := NewPostCache(&fakeSource{posts: samplePosts()}, time.Minute)

	tests := []struct {
		tag    string
		drafts bool
		want   int
	}{
		{"go", false, 1},
		{"GO", false, 1},
		{" go ", true, 2},
		{"animation", false, 1},
		{"missing", false, 0},
	}
	for _, tt := range tests {
		got, err := c.ListPosts(tt.tag, tt.drafts)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("ListPosts(%q, %v) = %d posts, want %d", tt.tag, tt.drafts, len(got), tt.want)
		}
	}
}

func TestPostCacheListTags(t *testing.T) {
	c := NewPostCache(&fakeSource{posts: []content.Post{
		testPost("a.md", "A", "2024-01-01", "Go", "css"),
		draft(testPost("b.md", "B", "2024-01-02", "hidden")),
	}}, time.Minute)

	tags, err := c.ListTags()
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 || tags[0] != "css" || tags[1] != "go" {
		t.Errorf("ListTags = %v, want [css go]", tags)
	}
}

func TestPostCacheGetPost(t *testing.T) {
	c := NewPostCache(&fakeSource{posts: samplePosts()}, time.Minute)

	p, err := c.GetPost("go-tips", false)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if p.Meta.Title != "Go tips" {
		t.Errorf("Title = %q", p.Meta.Title)
	}
	if _, err := c.GetPost("secret", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft without admin: err = %v, want ErrNotFound", err)
	}
	if _, err := c.GetPost("secret", true); err != nil {
		t.Errorf("draft with admin: %v", err)
	}
	if _, err := c.GetPost("nope", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: err = %v, want ErrNotFound", err)
	}
}

func TestPostCacheDrafts(t *testing.T) {
	c := NewPostCache(&fakeSource{posts: samplePosts()}, time.Minute)
	drafts, err := c.Drafts()
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 1 || drafts[0].Slug() != "secret" {
		t.Errorf("Drafts = %v", drafts)
	}
}

func TestPostCacheInvalidateAndTTL(t *testing.T) {
	src := &fakeSource{posts: samplePosts()}
	c := NewPostCache(src, time.Minute)

	if _, err := c.ListPosts("", false); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()
	if _, err := c.ListPosts("", false); err != nil {
		t.Fatal(err)
	}
	if src.loads != 2 {
		t.Errorf("loads after Invalidate = %d, want 2", src.loads)
	}

	expired := NewPostCache(src, 0)
	expired.ListPosts("", false)
	expired.ListPosts("", false)
	if src.loads != 4 {
		t.Errorf("loads with zero TTL = %d, want 4", src.loads)
	}
}

func TestPostCacheLoadError(t *testing.T) {
	boom := errors.New("disk on fire")
	var hookErr error
	c := NewPostCache(&fakeSource{err: boom}, time.Minute)
	c.onLoad = func(n int, err error) { hookErr = err }

	if _, err := c.ListPosts("", false); !errors.Is(err, boom) {
		t.Errorf("ListPosts err = %v, want %v", err, boom)
	}
	if !errors.Is(hookErr, boom) {
		t.Errorf("onLoad saw %v, want %v", hookErr, boom)
	}
}

func TestPostCacheEmptySource(t *testing.T) {
	src := &fakeSource{}
	c := NewPostCache(src, time.Minute)
	posts, err := c.ListPosts("", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts", len(posts))
	}
	c.ListPosts("", false)
	if src.loads != 1 {
		t.Errorf("empty result should still be cached, loads = %d", src.loads)
	}
}
