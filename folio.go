// Package folio serves a personal website built with Go, Echo, and templ:
// a blog read from markdown files, standalone pages, a newsletter signup,
// a now playing indicator, RSS and sitemap.
//
// Pages are rendered by the views package; folio owns the handlers,
// middleware, storage and configuration around them.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the store,
// post cache, handlers, middleware, metrics and logger.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *PostCache
	Loader  *content.Loader
	Metrics *Metrics
	Log     zerolog.Logger

	loginLimiter  *Limiter
	signupLimiter *Limiter
	postSource    PostSource
	customRoutes  []func(*App)
	ready         bool
}

// New creates a folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Metrics: NewMetrics(),
		Log:     NewLogger(cfg.LogLevel, cfg.LogPretty, os.Stderr),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.Loader = &content.Loader{
		PostsDir:    a.Config.PostsDir(),
		PagesDir:    a.Config.PagesDir(),
		ImageRoot:   a.Config.StaticDir,
		ImagePrefix: "/public/",
		Logger:      a.Log.With().Str("component", "content").Logger(),
	}
	if a.postSource == nil {
		a.postSource = a.Loader
	}
	return a
}

// Setup opens the database and registers middleware and routes. Start calls
// it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPostCache(a.postSource, a.Config.PostCacheTTL)
	a.Cache.onLoad = func(n int, err error) {
		a.Metrics.observeReload(n, err)
		if err != nil {
			a.Log.Error().Err(err).Msg("content reload failed")
			return
		}
		a.Log.Debug().Int("posts", n).Msg("content reloaded")
	}

	a.loginLimiter = NewLimiter(5, time.Minute)
	a.signupLimiter = NewLimiter(10, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start runs Setup and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if a.Config.AdminPassword == "" {
		a.Log.Warn().Msg("admin login disabled: no admin password set")
	}
	a.Log.Info().Str("addr", a.Config.Addr).Str("url", a.Config.URL).Msg("folio listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))

	e.GET("/", a.handleHome)
	e.GET("/blog", a.handleBlog)
	e.GET("/blog/:slug", a.handlePost)
	e.GET("/newsletter", a.handleNewsletter)
	e.POST("/newsletter", a.handleSubscribe)
	e.GET("/unsubscribe/:token", a.handleUnsubscribe)
	e.GET("/percentagechange", a.handlePercentageChange)

	api := e.Group("/api")
	api.GET("/now-playing", a.handleGetNowPlaying)
	api.PUT("/now-playing", a.handlePutNowPlaying, a.requireToken)
	api.DELETE("/now-playing", a.handleDeleteNowPlaying, a.requireToken)

	e.GET("/admin", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	e.POST("/admin/reload", a.handleReload)

	// Markdown pages: /about, /books, /changelog and anything else in pages/.
	e.GET("/:page", a.handlePage)
}

// view returns the config subset templates need.
func (a *App) view() views.SiteConfig {
	return a.Config.View()
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.signupLimiter != nil {
		a.signupLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
