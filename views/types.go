package views

import "time"

// SiteConfig holds site-wide settings the templates read. Every handler
// passes this to templates so nothing but the footer links is hardcoded.
type SiteConfig struct {
	Name        string // shown in the header and <title>
	URL         string // canonical base URL, no trailing slash
	Description string
	Author      string // copyright line and JSON-LD
	Me          string // rel="me" profile URL, optional
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	Path        string // request path, used for canonical URL and active nav
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}

// Link is a named hyperlink rendered in navigation lists.
type Link struct {
	Name string
	URL  string
}

// Track is the song shown by the now playing indicator.
type Track struct {
	Title     string
	Artist    string
	URL       string
	UpdatedAt time.Time
}
