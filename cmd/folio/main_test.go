package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func TestRunNewScaffoldsLoadableSite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-site")
	var out bytes.Buffer
	if err := runNew(&out, dir); err != nil {
		t.Fatalf("runNew: %v", err)
	}
	for _, f := range []string{
		"folio.yaml",
		"content/posts/hello-world.mdx",
		"content/pages/about.md",
		"content/pages/books.md",
		"content/pages/changelog.md",
		"public/favicon.svg",
	} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	if !strings.Contains(out.String(), "created") {
		t.Errorf("output does not list created files:\n%s", out.String())
	}

	cfg, err := folio.LoadConfig(filepath.Join(dir, "folio.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "My Site" {
		t.Errorf("Name = %q, want %q", cfg.Name, "My Site")
	}

	loader := content.Loader{PostsDir: filepath.Join(dir, "content", "posts")}
	posts, err := loader.LoadPosts()
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}
	var found bool
	for _, p := range posts {
		if p.Slug() == "hello-world" {
			found = true
		}
	}
	if !found {
		t.Error("scaffolded hello-world post not found")
	}
}

func TestRunNewRefusesExistingDir(t *testing.T) {
	if err := runNew(&bytes.Buffer{}, t.TempDir()); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestToTitle(t *testing.T) {
	tests := map[string]string{
		"my-blog": "My Blog",
		"myblog":  "Myblog",
		"a_b-c":   "A B C",
	}
	for in, want := range tests {
		if got := toTitle(in); got != want {
			t.Errorf("toTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "folio dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestPostsCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	if err := runNew(&bytes.Buffer{}, dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_CONTENT_DIR", filepath.Join(dir, "content"))

	run := func(args ...string) string {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "folio.yaml")}, args...))
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute %v: %v", args, err)
		}
		return out.String()
	}

	got := run("posts")
	if !strings.Contains(got, "hello-world") {
		t.Errorf("posts output missing hello-world:\n%s", got)
	}
	if strings.Contains(got, "drafting") {
		t.Errorf("posts output lists a draft without --drafts:\n%s", got)
	}
	if got := run("posts", "--drafts"); !strings.Contains(got, "drafting") {
		t.Errorf("posts --drafts output missing draft:\n%s", got)
	}
}
