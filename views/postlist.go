package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// parallaxSlug is the one post that gets the decorative parallax cover.
const parallaxSlug = "spring-parallax-framer-motion-guide"

// PostList renders posts in the order given. An empty slice renders a
// single "no results" placeholder instead of list items.
func PostList(posts []content.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<ul class="post-list" id="post-list">`)
		if len(posts) == 0 {
			h.raw(`<p class="no-results">🧐 No posts found</p>`)
		}
		for _, p := range posts {
			h.component(postItem(p))
		}
		h.raw("</ul>")
		return h.err
	})
}

func postItem(p content.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		slug := p.Slug()
		link := p.Link()
		meta := p.Meta

		h.raw("<li>")
		if slug == parallaxSlug {
			h.raw(`<a class="parallax-link" href="/blog/` + parallaxSlug + `">`)
			h.component(ParallaxCover())
			h.raw("</a>")
		}
		if meta.Image != "" {
			h.raw(`<a class="cover"`)
			h.attr("href", link)
			h.attr("aria-label", meta.Title)
			h.raw(">")
			h.component(BlogImage(meta.Image, meta.Title, meta.ImageWidth, meta.ImageHeight))
			h.raw("</a>")
		}
		h.raw(`<a class="title"`)
		h.attr("href", link)
		h.raw(">")
		h.text(meta.Title)
		h.raw(`</a><p class="summary">`)
		h.text(meta.Summary)
		h.raw(`</p>`)
		h.component(postMeta(meta))
		h.raw("</li>")
		return h.err
	})
}

// postMeta renders "Published on <date> · <reading time>".
func postMeta(meta content.Meta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		date, err := FormatDate(meta.PublishedAt)
		if err != nil {
			return err
		}
		h := newWriter(ctx, w)
		h.raw(`<p class="meta">Published on <time`)
		h.attr("datetime", meta.PublishedAt)
		h.raw(">")
		h.text(date)
		h.raw("</time> &middot; ")
		h.text(meta.ReadingTime.Text)
		h.raw("</p>")
		return h.err
	})
}

// BlogImage renders a lazily loaded cover image. Width and height are
// emitted only when known so the browser can reserve space.
func BlogImage(src, alt string, width, height int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<img class="blog-image"`)
		h.url("src", src)
		h.attr("alt", alt)
		if width > 0 && height > 0 {
			h.intAttr("width", width)
			h.intAttr("height", height)
		}
		h.raw(` loading="lazy" decoding="async">`)
		return h.err
	})
}

// ParallaxCover renders the layered decorative cover. The motion itself is
// pure CSS in site.css.
func ParallaxCover() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="parallax-cover" aria-hidden="true">`+
			`<div class="parallax-layer parallax-layer-back"></div>`+
			`<div class="parallax-layer parallax-layer-mid"></div>`+
			`<div class="parallax-layer parallax-layer-front"></div>`+
			`</div>`)
		return err
	})
}
