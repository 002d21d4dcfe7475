package folio

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// maxRelatedPosts caps the related section under an article.
const maxRelatedPosts = 3

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", IsAdmin(c))
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.view(), a.currentTrack(), posts))
}

func (a *App) handleBlog(c echo.Context) error {
	tag := strings.TrimSpace(c.QueryParam("tag"))
	query := strings.TrimSpace(c.QueryParam("q"))
	posts, err := a.Cache.ListPosts(tag, IsAdmin(c))
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	posts = SearchPosts(posts, query)
	return Render(c, views.Blog(a.view(), a.currentTrack(), posts, tags, query, tag))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	admin := IsAdmin(c)
	post, err := a.Cache.GetPost(slug, admin)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.view()))
		}
		return err
	}

	var count int
	if post.Meta.Draft {
		count, err = a.Store.Views(slug)
	} else {
		count, err = a.Store.IncrementViews(slug)
		a.Metrics.PostViews.WithLabelValues(slug).Inc()
	}
	if err != nil {
		a.Log.Warn().Err(err).Str("slug", slug).Msg("view counter unavailable")
	}

	posts, err := a.Cache.ListPosts("", admin)
	if err != nil {
		return err
	}
	related := views.FilterRelatedPosts(post, posts)
	if len(related) > maxRelatedPosts {
		related = related[:maxRelatedPosts]
	}
	return Render(c, views.Post(a.view(), a.currentTrack(), post, related, count))
}

func (a *App) handlePage(c echo.Context) error {
	page, err := a.Loader.LoadPage(c.Param("page"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.view()))
		}
		return err
	}
	return Render(c, views.MarkdownPage(a.view(), a.currentTrack(), page))
}

func (a *App) handlePercentageChange(c echo.Context) error {
	calc := views.PercentCalc{
		From: strings.TrimSpace(c.QueryParam("from")),
		To:   strings.TrimSpace(c.QueryParam("to")),
	}
	if calc.From != "" || calc.To != "" {
		from, errFrom := strconv.ParseFloat(calc.From, 64)
		to, errTo := strconv.ParseFloat(calc.To, 64)
		switch {
		case errFrom != nil || errTo != nil:
			calc.Error = "Enter two numbers."
		default:
			v, err := PercentageChange(from, to)
			if err != nil {
				calc.Error = "Cannot calculate a change from zero."
			} else {
				calc.Result = formatPercent(v)
			}
		}
	}
	return Render(c, views.PercentageChange(a.view(), a.currentTrack(), calc))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", false)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", false)
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /admin\nDisallow: /api/\nSitemap: " + views.BuildURL(a.Config.URL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.view()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError(a.view()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
