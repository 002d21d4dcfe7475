package views

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// latestPostsOnHome caps the list on the home page.
const latestPostsOnHome = 5

// NewsletterForm is the state of the subscribe form after a submission.
type NewsletterForm struct {
	Email   string
	Message string
	Success bool
}

// PercentCalc holds the calculator inputs and its formatted outcome.
type PercentCalc struct {
	From   string
	To     string
	Result string
	Error  string
}

// Home renders the intro and the most recent posts.
func Home(cfg SiteConfig, track *Track, posts []content.Post) templ.Component {
	if len(posts) > latestPostsOnHome {
		posts = posts[:latestPostsOnHome]
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<section class="intro"><h1>`)
		h.text(cfg.Name)
		h.raw("</h1><p>")
		h.text(cfg.Description)
		h.raw(`</p></section><section class="latest"><h2>Latest posts</h2>`)
		h.component(PostList(posts))
		h.raw(`<a class="more" href="/blog">All posts</a></section>`)
		return h.err
	})
	meta := PageMeta{Title: cfg.Name, Path: "/", JSONLD: WebsiteJsonLD(cfg)}
	return Page(cfg, meta, track, body)
}

// Blog renders the searchable post index with a tag filter row.
func Blog(cfg SiteConfig, track *Track, posts []content.Post, tags []string, query, tag string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<h1>Blog</h1><form class="search" method="get" action="/blog">`)
		h.raw(`<input type="search" name="q" placeholder="Search articles" aria-label="Search articles"`)
		h.attr("value", query)
		h.raw(">")
		if tag != "" {
			h.raw(`<input type="hidden" name="tag"`)
			h.attr("value", tag)
			h.raw(`><p class="active-tag">Tagged <strong>`)
			h.text(tag)
			h.raw(`</strong> <a href="/blog">clear</a></p>`)
		}
		h.raw("</form>")
		if len(tags) > 0 {
			h.raw(`<ul class="tags">`)
			for _, t := range tags {
				h.raw("<li><a")
				h.attr("href", "/blog?tag="+url.QueryEscape(t))
				if t == tag {
					h.raw(` aria-current="true"`)
				}
				h.raw(">")
				h.text(t)
				h.raw("</a></li>")
			}
			h.raw("</ul>")
		}
		h.component(PostList(posts))
		return h.err
	})
	meta := PageMeta{Title: "Blog", Path: "/blog", Description: "All articles by " + cfg.Author}
	return Page(cfg, meta, track, body)
}

// Post renders a single article with its view count and related posts.
func Post(cfg SiteConfig, track *Track, post content.Post, related []content.Post, views int) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		date, err := FormatDate(post.Meta.PublishedAt)
		if err != nil {
			return err
		}
		h := newWriter(ctx, w)
		h.raw(`<article class="post"><h1>`)
		h.text(post.Meta.Title)
		h.raw(`</h1><p class="meta"><time`)
		h.attr("datetime", post.Meta.PublishedAt)
		h.raw(">")
		h.text(date)
		h.raw("</time> &middot; ")
		h.text(post.Meta.ReadingTime.Text)
		h.raw(` &middot; <span class="views">`)
		h.text(formatViews(views))
		h.raw("</span>")
		if post.Meta.Draft {
			h.raw(` <span class="draft">Draft</span>`)
		}
		h.raw("</p>")
		if post.Meta.Image != "" {
			h.component(BlogImage(post.Meta.Image, post.Meta.Title, post.Meta.ImageWidth, post.Meta.ImageHeight))
		}
		h.raw(`<div class="prose">`)
		h.component(markdown.Markdown(post.Source))
		h.raw("</div>")
		if len(post.Meta.Tags) > 0 {
			h.raw(`<ul class="tags">`)
			for _, t := range post.Meta.Tags {
				h.raw("<li><a")
				h.attr("href", "/blog?tag="+url.QueryEscape(t))
				h.raw(">")
				h.text(t)
				h.raw("</a></li>")
			}
			h.raw("</ul>")
		}
		h.raw("</article>")
		if len(related) > 0 {
			h.raw(`<section class="related"><h2>Related posts</h2>`)
			h.component(PostList(related))
			h.raw("</section>")
		}
		return h.err
	})
	meta := PageMeta{
		Title:       post.Meta.Title,
		Description: post.Meta.Summary,
		Path:        post.Link(),
		OGType:      "article",
		Image:       post.Meta.Image,
		JSONLD:      BlogPostingJsonLD(cfg, post),
	}
	return Page(cfg, meta, track, body)
}

func formatViews(n int) string {
	if n == 1 {
		return "1 view"
	}
	return strconv.Itoa(n) + " views"
}

// MarkdownPage renders a standalone page such as /about or /books.
func MarkdownPage(cfg SiteConfig, track *Track, page content.Page) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<h1>")
		h.text(page.Title)
		h.raw(`</h1><div class="prose">`)
		h.component(markdown.Markdown(page.Source))
		h.raw("</div>")
		return h.err
	})
	meta := PageMeta{Title: page.Title, Description: page.Summary, Path: "/" + page.Name}
	return Page(cfg, meta, track, body)
}

// Newsletter renders the optional intro page and the subscribe form.
func Newsletter(cfg SiteConfig, track *Track, page *content.Page, form NewsletterForm, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<h1>Newsletter</h1>")
		if page != nil {
			h.raw(`<div class="prose">`)
			h.component(markdown.Markdown(page.Source))
			h.raw("</div>")
		}
		if form.Message != "" {
			class := "form-error"
			if form.Success {
				class = "form-success"
			}
			h.raw("<p")
			h.attr("class", class)
			h.raw(">")
			h.text(form.Message)
			h.raw("</p>")
		}
		if !form.Success {
			h.raw(`<form class="subscribe" method="post" action="/newsletter">`)
			h.raw(`<input type="hidden" name="_csrf"`)
			h.attr("value", csrfToken)
			h.raw(`><input type="email" name="email" required placeholder="you@example.com" aria-label="Email address"`)
			h.attr("value", form.Email)
			h.raw(`><button type="submit">Subscribe</button></form>`)
		}
		return h.err
	})
	meta := PageMeta{Title: "Newsletter", Path: "/newsletter", Description: "Get new posts by email."}
	return Page(cfg, meta, track, body)
}

// Unsubscribed confirms the outcome of an unsubscribe link.
func Unsubscribed(cfg SiteConfig, track *Track, ok bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		if ok {
			h.raw("<h1>Unsubscribed</h1><p>You will not receive any more emails.</p>")
		} else {
			h.raw("<h1>Link expired</h1><p>This unsubscribe link is not valid.</p>")
		}
		return h.err
	})
	return Page(cfg, PageMeta{Title: "Newsletter", Path: "/newsletter"}, track, body)
}

// PercentageChange renders the calculator form and its last result.
func PercentageChange(cfg SiteConfig, track *Track, calc PercentCalc) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<h1>Percentage change calculator</h1><form class="calc" method="get" action="/percentagechange">`)
		h.raw(`<label>From <input type="number" step="any" name="from"`)
		h.attr("value", calc.From)
		h.raw(`></label><label>To <input type="number" step="any" name="to"`)
		h.attr("value", calc.To)
		h.raw(`></label><button type="submit">Calculate</button></form>`)
		switch {
		case calc.Error != "":
			h.raw(`<p class="form-error">`)
			h.text(calc.Error)
			h.raw("</p>")
		case calc.Result != "":
			h.raw(`<p class="calc-result">`)
			h.text(calc.Result)
			h.raw("</p>")
		}
		return h.err
	})
	meta := PageMeta{Title: "Percentage change calc", Path: "/percentagechange", Description: "Calculate the percentage change between two numbers."}
	return Page(cfg, meta, track, body)
}

// AdminLogin renders the password form.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<h1>Admin</h1>")
		if showError {
			h.raw(`<p class="form-error">Wrong password.</p>`)
		}
		h.raw(`<form method="post" action="/admin/login"><input type="hidden" name="_csrf"`)
		h.attr("value", csrfToken)
		h.raw(`><input type="password" name="password" required aria-label="Password"><button type="submit">Log in</button></form>`)
		return h.err
	})
	return Page(cfg, PageMeta{Title: "Admin", Path: "/admin"}, nil, body)
}

// AdminDashboard lists drafts and the subscriber count.
func AdminDashboard(cfg SiteConfig, drafts []content.Post, subscribers int, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<h1>Admin</h1><p class="subscribers">`)
		h.text(strconv.Itoa(subscribers))
		h.raw(` newsletter subscribers</p><h2>Drafts</h2>`)
		h.component(PostList(drafts))
		h.raw(`<form method="post" action="/admin/reload"><input type="hidden" name="_csrf"`)
		h.attr("value", csrfToken)
		h.raw(`><button type="submit">Reload content</button></form>`)
		h.raw(`<form method="post" action="/admin/logout"><input type="hidden" name="_csrf"`)
		h.attr("value", csrfToken)
		h.raw(`><button type="submit">Log out</button></form>`)
		return h.err
	})
	return Page(cfg, PageMeta{Title: "Admin", Path: "/admin"}, nil, body)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>404</h1><p>This page does not exist. <a href="/">Go home</a>.</p>`)
		return err
	})
	return Page(cfg, PageMeta{Title: "Not found"}, nil, body)
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Something went wrong</h1><p>Please try again later.</p>`)
		return err
	})
	return Page(cfg, PageMeta{Title: "Error"}, nil, body)
}
