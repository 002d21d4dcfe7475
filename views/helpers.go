package views

import (
	"encoding/json"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/eringen/folio/content"
)

// BuildURL joins path segments onto a base URL. Paths never carry a
// trailing slash; the bare base becomes "<base>/". Canonical links, the feed
// and the sitemap all build absolute URLs through it.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// absURL returns ref unchanged when it is already absolute, otherwise joins
// it onto base.
func absURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return BuildURL(base, ref)
}

// FilterRelatedPosts returns posts sharing at least one tag with current,
// most shared tags first. Posts with equal overlap keep their input order.
func FilterRelatedPosts(current content.Post, posts []content.Post) []content.Post {
	tags := tagSet(current.Meta.Tags)
	if len(tags) == 0 {
		return nil
	}
	type scored struct {
		post   content.Post
		shared int
	}
	var hits []scored
	slug := current.Slug()
	for _, p := range posts {
		if p.Slug() == slug {
			continue
		}
		n := 0
		for t := range tagSet(p.Meta.Tags) {
			if _, ok := tags[t]; ok {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, scored{p, n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].shared > hits[j].shared })
	related := make([]content.Post, len(hits))
	for i, h := range hits {
		related[i] = h.post
	}
	return related
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

type ldPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldWebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type ldWebSite struct {
	Context     string    `json:"@context"`
	Type        string    `json:"@type"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Author      *ldPerson `json:"author,omitempty"`
}

type ldBlogPosting struct {
	Context          string    `json:"@context"`
	Type             string    `json:"@type"`
	Headline         string    `json:"headline"`
	Description      string    `json:"description,omitempty"`
	DatePublished    string    `json:"datePublished,omitempty"`
	URL              string    `json:"url"`
	WordCount        int       `json:"wordCount,omitempty"`
	Image            string    `json:"image,omitempty"`
	Keywords         string    `json:"keywords,omitempty"`
	Author           *ldPerson `json:"author,omitempty"`
	MainEntityOfPage ldWebPage `json:"mainEntityOfPage"`
}

func person(name string) *ldPerson {
	if name == "" {
		return nil
	}
	return &ldPerson{Type: "Person", Name: name}
}

func marshalLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	return marshalLD(ldWebSite{
		Context:     "https://schema.org",
		Type:        "WebSite",
		Name:        cfg.Name,
		URL:         BuildURL(cfg.URL),
		Description: cfg.Description,
		Author:      person(cfg.Author),
	})
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post content.Post) string {
	postURL := BuildURL(cfg.URL, post.Link())
	ld := ldBlogPosting{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		Headline:         post.Meta.Title,
		Description:      post.Meta.Summary,
		DatePublished:    post.Meta.PublishedAt,
		URL:              postURL,
		WordCount:        post.Meta.ReadingTime.Words,
		Keywords:         strings.Join(post.Meta.Tags, ", "),
		Author:           person(cfg.Author),
		MainEntityOfPage: ldWebPage{Type: "WebPage", ID: postURL},
	}
	if post.Meta.Image != "" {
		ld.Image = absURL(cfg.URL, post.Meta.Image)
	}
	return marshalLD(ld)
}
