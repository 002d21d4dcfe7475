package views

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// now is swapped in tests.
var now = time.Now

// Page renders the full document shell: head, header, the children inside a
// page transition, and the footer with links, now playing and copyright.
func Page(cfg SiteConfig, meta PageMeta, track *Track, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<!doctype html>")
		h.raw(`<html lang="en">`)
		h.component(head(cfg, meta))
		h.raw(`<body><div class="container">`)
		h.component(Header(cfg, meta.Path))
		h.raw(`<main class="main">`)
		h.component(PageTransition(children))
		h.raw(`</main>`)
		h.component(Footer(cfg, track))
		if cfg.Me != "" {
			h.raw("<link")
			h.url("href", cfg.Me)
			h.raw(` rel="me">`)
		}
		h.raw(`</div></body></html>`)
		return h.err
	})
}

func head(cfg SiteConfig, meta PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		title := cfg.Name
		if meta.Title != "" && meta.Title != cfg.Name {
			title = meta.Title + " – " + cfg.Name
		}
		description := meta.Description
		if description == "" {
			description = cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		canonical := BuildURL(cfg.URL, meta.Path)

		h.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		h.raw(`<meta name="description"`)
		h.attr("content", description)
		h.raw(`><link rel="canonical"`)
		h.attr("href", canonical)
		h.raw(`><meta property="og:title"`)
		h.attr("content", title)
		h.raw(`><meta property="og:description"`)
		h.attr("content", description)
		h.raw(`><meta property="og:url"`)
		h.attr("content", canonical)
		h.raw(`><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(">")
		if meta.Image != "" {
			h.raw(`<meta property="og:image"`)
			h.attr("content", absURL(cfg.URL, meta.Image))
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet" href="/public/site.css">`)
		h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		h.attr("title", cfg.Name)
		h.raw(">")
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the payload cannot close the tag.
			h.raw(`<script type="application/ld+json">`)
			h.raw(meta.JSONLD)
			h.raw(`</script>`)
		}
		h.raw("</head>")
		return h.err
	})
}

// Header renders the site name and primary navigation. The link matching
// path is marked as the current page.
func Header(cfg SiteConfig, path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<header class="header"><a class="brand" href="/">`)
		h.text(cfg.Name)
		h.raw(`</a><nav class="nav">`)
		for _, l := range navLinks {
			h.raw("<a")
			h.attr("href", l.URL)
			if l.URL == path {
				h.raw(` aria-current="page"`)
			}
			h.raw(">")
			h.text(l.Name)
			h.raw("</a>")
		}
		h.raw("</nav></header>")
		return h.err
	})
}

// PageTransition wraps children in the element the stylesheet animates on
// page load.
func PageTransition(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<div class="page-transition">`)
		h.component(children)
		h.raw(`</div>`)
		return h.err
	})
}

// Footer renders the fixed link list, the now playing indicator and the
// copyright line for the current year.
func Footer(cfg SiteConfig, track *Track) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<footer class="footer"><ul class="links">`)
		for _, l := range footerLinks {
			h.raw("<li><a")
			h.attr("href", l.URL)
			h.raw(">")
			h.text(l.Name)
			h.raw("</a></li>")
		}
		h.raw("</ul>")
		h.component(NowPlaying(track))
		h.raw(`<p class="copyright">&copy; `)
		h.text(cfg.Author)
		h.raw(" " + strconv.Itoa(now().Year()))
		h.raw("</p></footer>")
		return h.err
	})
}

// NowPlaying shows the current track, or "Not Playing" when track is nil.
func NowPlaying(track *Track) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		if track == nil {
			h.raw(`<div class="now-playing"><span class="now-playing-status">Not Playing</span></div>`)
			return h.err
		}
		h.raw(`<div class="now-playing playing"><span class="now-playing-status">Now Playing</span> `)
		if track.URL != "" {
			h.raw(`<a class="now-playing-track"`)
			h.url("href", track.URL)
			h.raw(` target="_blank" rel="noopener noreferrer">`)
			h.text(track.Title)
			h.raw("</a>")
		} else {
			h.raw(`<span class="now-playing-track">`)
			h.text(track.Title)
			h.raw("</span>")
		}
		if track.Artist != "" {
			h.raw(` <span class="now-playing-artist">`)
			h.text(track.Artist)
			h.raw("</span>")
		}
		h.raw("</div>")
		return h.err
	})
}
