// Package content loads blog posts and static pages from markdown files on disk.
package content

import (
	"errors"
	"regexp"
)

// ErrNotFound is returned when a requested page or post does not exist.
var ErrNotFound = errors.New("content: not found")

var reMarkdownExt = regexp.MustCompile(`\.mdx?$`)

// ReadingTime is the precomputed reading estimate for a post.
type ReadingTime struct {
	Text    string  // display label, e.g. "3 min read"
	Minutes float64 // unrounded minutes
	Words   int
}

// Meta is the frontmatter of a post plus values derived at load time.
type Meta struct {
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	PublishedAt string   `yaml:"publishedAt"`
	Image       string   `yaml:"image"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`

	ReadingTime ReadingTime `yaml:"-"`
	ImageWidth  int         `yaml:"-"`
	ImageHeight int         `yaml:"-"`
}

// Post is a single blog post as read from the posts directory.
type Post struct {
	Meta     Meta
	FilePath string // relative to the posts directory, forward slashes
	Source   []byte // markdown body without frontmatter
}

// Slug returns the explicit slug if set, otherwise the file path with a
// trailing .md or .mdx removed.
func (p Post) Slug() string {
	return ResolveSlug(p.Meta.Slug, p.FilePath)
}

// Link returns the post's detail page path.
func (p Post) Link() string {
	return "/blog/" + p.Slug()
}

// ResolveSlug implements the slug rule shared by the list, feed and sitemap.
func ResolveSlug(explicit, filePath string) string {
	if explicit != "" {
		return explicit
	}
	return reMarkdownExt.ReplaceAllString(filePath, "")
}

// Page is a standalone markdown page such as /about.
type Page struct {
	Name    string `yaml:"-"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Source  []byte `yaml:"-"`
}
