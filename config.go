package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Samuel Kraft")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Copyright line and JSON-LD (default Name)
	Me          string `yaml:"me"`          // rel="me" profile URL

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/site.db")
	ContentDir   string `yaml:"content_dir"`   // Holds posts/ and pages/ (default "content")
	StaticDir    string `yaml:"static_dir"`    // Served under /public (default "public")

	AdminPassword   string `yaml:"admin_password"`    // Empty disables the admin login
	SessionSecret   string `yaml:"session_secret"`    // Required: session encryption secret
	CookieSecure    bool   `yaml:"cookie_secure"`     // Set true for HTTPS
	NowPlayingToken string `yaml:"now_playing_token"` // Empty disables the now playing API

	PostCacheTTL  time.Duration `yaml:"post_cache_ttl"`  // Post cache TTL (default 5m)
	NowPlayingTTL time.Duration `yaml:"now_playing_ttl"` // Tracks older than this are hidden (default 15m)

	LogLevel  string `yaml:"log_level"`  // zerolog level (default "info")
	LogPretty bool   `yaml:"log_pretty"` // Console output instead of JSON
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Samuel Kraft"
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.NowPlayingTTL == 0 {
		c.NowPlayingTTL = 15 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// View returns the subset of the config templates read.
func (c SiteConfig) View() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
		Me:          c.Me,
	}
}

// PostsDir is where post markdown files live.
func (c SiteConfig) PostsDir() string { return filepath.Join(c.ContentDir, "posts") }

// PagesDir is where standalone page markdown files live.
func (c SiteConfig) PagesDir() string { return filepath.Join(c.ContentDir, "pages") }

// LoadConfig reads a YAML config file, applies FOLIO_* environment
// overrides and fills defaults. A missing file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("folio: read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("folio: parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) applyEnv() error {
	c.Name = EnvOr("FOLIO_SITE_NAME", c.Name)
	c.URL = EnvOr("FOLIO_SITE_URL", c.URL)
	c.Description = EnvOr("FOLIO_SITE_DESCRIPTION", c.Description)
	c.Author = EnvOr("FOLIO_SITE_AUTHOR", c.Author)
	c.Addr = EnvOr("FOLIO_ADDR", c.Addr)
	c.DatabasePath = EnvOr("FOLIO_DATABASE_PATH", c.DatabasePath)
	c.ContentDir = EnvOr("FOLIO_CONTENT_DIR", c.ContentDir)
	c.StaticDir = EnvOr("FOLIO_STATIC_DIR", c.StaticDir)
	c.AdminPassword = EnvOr("FOLIO_ADMIN_PASSWORD", c.AdminPassword)
	c.SessionSecret = EnvOr("FOLIO_SESSION_SECRET", c.SessionSecret)
	c.NowPlayingToken = EnvOr("FOLIO_NOW_PLAYING_TOKEN", c.NowPlayingToken)
	c.LogLevel = EnvOr("FOLIO_LOG_LEVEL", c.LogLevel)
	if v := os.Getenv("FOLIO_COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("folio: FOLIO_COOKIE_SECURE: %w", err)
		}
		c.CookieSecure = b
	}
	if v := os.Getenv("FOLIO_POST_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("folio: FOLIO_POST_CACHE_TTL: %w", err)
		}
		c.PostCacheTTL = d
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the logger built from LogLevel and LogPretty.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithPostSource replaces the filesystem loader, e.g. in tests.
func WithPostSource(src PostSource) Option {
	return func(a *App) {
		a.postSource = src
	}
}
