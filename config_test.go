package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":3000" || cfg.ContentDir != "content" || cfg.PostCacheTTL != 5*time.Minute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Author != cfg.Name {
		t.Errorf("Author = %q, want it to default to Name %q", cfg.Author, cfg.Name)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	body := "name: My Site\nurl: https://example.com/\npost_cache_ttl: 30s\nadmin_password: from-file\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_ADMIN_PASSWORD", "from-env")
	t.Setenv("FOLIO_COOKIE_SECURE", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "My Site" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
	if cfg.PostCacheTTL != 30*time.Second {
		t.Errorf("PostCacheTTL = %v", cfg.PostCacheTTL)
	}
	if cfg.AdminPassword != "from-env" {
		t.Errorf("AdminPassword = %q, env should win", cfg.AdminPassword)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be set from env")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}

	t.Setenv("FOLIO_POST_CACHE_TTL", "soon")
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected env duration error")
	}
}
