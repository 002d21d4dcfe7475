package folio

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eringen/folio/content"
)

// ErrNotFound is returned when a requested post, page or subscriber does not exist.
var ErrNotFound = content.ErrNotFound

// PostSource loads every post, drafts included, newest first.
type PostSource interface {
	LoadPosts() ([]content.Post, error)
}

// PostCache is an in-memory cache of posts and tags with TTL. Reads after
// the TTL reload from the source.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Post
	tags    []string
	fetched time.Time
	ttl     time.Duration
	source  PostSource

	// onLoad, when set, is called after every reload attempt.
	onLoad func(n int, err error)
}

// NewPostCache creates a PostCache backed by the given source.
func NewPostCache(src PostSource, ttl time.Duration) *PostCache {
	return &PostCache{source: src, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.source.LoadPosts()
	if c.onLoad != nil {
		c.onLoad(len(posts), err)
	}
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []content.Post{}
	}
	c.posts = posts
	c.tags = collectTags(posts)
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]content.Post, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.tags, nil
}

// ListPosts returns posts newest first, optionally filtered by tag. Drafts
// are included only when drafts is true.
func (c *PostCache) ListPosts(tag string, drafts bool) ([]content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	normalized := normalizeTag(tag)
	filtered := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Meta.Draft && !drafts {
			continue
		}
		if normalized != "" && !hasTag(p, normalized) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// Drafts returns only the draft posts.
func (c *PostCache) Drafts() ([]content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var drafts []content.Post
	for _, p := range posts {
		if p.Meta.Draft {
			drafts = append(drafts, p)
		}
	}
	return drafts, nil
}

// ListTags returns all unique tags from published posts.
func (c *PostCache) ListTags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// GetPost returns a single post by resolved slug. Drafts are found only
// when drafts is true.
func (c *PostCache) GetPost(slug string, drafts bool) (content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return content.Post{}, err
	}
	for _, p := range posts {
		if p.Slug() == slug && (drafts || !p.Meta.Draft) {
			return p, nil
		}
	}
	return content.Post{}, ErrNotFound
}

func collectTags(posts []content.Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		if p.Meta.Draft {
			continue
		}
		for _, t := range p.Meta.Tags {
			if n := normalizeTag(t); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func hasTag(p content.Post, normalized string) bool {
	for _, t := range p.Meta.Tags {
		if normalizeTag(t) == normalized {
			return true
		}
	}
	return false
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
