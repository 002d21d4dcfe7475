package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var rePageName = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Loader reads posts and pages from the filesystem. The zero value is not
// usable; set at least PostsDir.
type Loader struct {
	PostsDir string
	PagesDir string

	// ImageRoot is the directory that ImagePrefix URLs are served from. Cover
	// images under that prefix get their dimensions probed at load time.
	ImageRoot   string
	ImagePrefix string

	Logger zerolog.Logger
}

// LoadPosts walks PostsDir for .md and .mdx files and returns every post,
// drafts included, newest first.
func (l *Loader) LoadPosts() ([]Post, error) {
	var posts []Post
	seen := make(map[string]string)
	err := filepath.WalkDir(l.PostsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !reMarkdownExt.MatchString(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(l.PostsDir, path)
		if err != nil {
			return err
		}
		post, err := l.readPost(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		slug := post.Slug()
		if prev, ok := seen[slug]; ok {
			l.Logger.Warn().Str("slug", slug).Str("file", post.FilePath).Str("previous", prev).Msg("duplicate post slug")
		}
		seen[slug] = post.FilePath
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: load posts: %w", err)
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (l *Loader) readPost(path, rel string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("%s: frontmatter: %w", rel, err)
	}
	if meta.Title == "" {
		meta.Title = titleFromFilename(rel)
	}
	if _, err := ParseDate(meta.PublishedAt); err != nil {
		l.Logger.Warn().Str("file", rel).Str("publishedAt", meta.PublishedAt).Msg("unparseable publish date")
	}
	meta.ReadingTime = EstimateReadingTime(body)
	if meta.Image != "" {
		meta.ImageWidth, meta.ImageHeight = l.probeImage(meta.Image)
	}
	return Post{Meta: meta, FilePath: rel, Source: body}, nil
}

// LoadPage reads <PagesDir>/<name>.md. Names are restricted to lowercase
// letters, digits and dashes.
func (l *Loader) LoadPage(name string) (Page, error) {
	if !rePageName.MatchString(name) {
		return Page{}, ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(l.PagesDir, name+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: load page %s: %w", name, err)
	}
	page := Page{Name: name}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &page)
	if err != nil {
		return Page{}, fmt.Errorf("content: page %s: frontmatter: %w", name, err)
	}
	if page.Title == "" {
		page.Title = titleFromFilename(name)
	}
	page.Source = body
	return page, nil
}

// ParseDate accepts a plain date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func sortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, erri := ParseDate(posts[i].Meta.PublishedAt)
		tj, errj := ParseDate(posts[j].Meta.PublishedAt)
		switch {
		case erri != nil && errj != nil:
			return posts[i].Slug() < posts[j].Slug()
		case erri != nil:
			return false
		case errj != nil:
			return true
		case !ti.Equal(tj):
			return ti.After(tj)
		}
		return posts[i].Slug() < posts[j].Slug()
	})
}

func titleFromFilename(rel string) string {
	name := reMarkdownExt.ReplaceAllString(filepath.Base(rel), "")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if strings.TrimSpace(name) == "" {
		return "Untitled"
	}
	return cases.Title(language.English).String(name)
}
