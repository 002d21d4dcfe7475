package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func testPost(file, title string) content.Post {
	return content.Post{
		FilePath: file,
		Meta: content.Meta{
			Title:       title,
			Summary:     "Summary of " + title,
			PublishedAt: "2021-03-04",
			ReadingTime: content.ReadingTime{Text: "3 min read"},
		},
	}
}

func TestPostListEmpty(t *testing.T) {
	got := renderString(t, PostList(nil))
	if c := strings.Count(got, `<p class="no-results">🧐 No posts found</p>`); c != 1 {
		t.Errorf("placeholder count = %d, want 1: %q", c, got)
	}
	if strings.Contains(got, "<li>") {
		t.Errorf("empty list should have no items: %q", got)
	}
}

func TestPostListPreservesOrder(t *testing.T) {
	posts := []content.Post{
		testPost("zebra.md", "Zebra"),
		testPost("alpha.mdx", "Alpha"),
		testPost("middle.md", "Middle"),
	}
	got := renderString(t, PostList(posts))
	if c := strings.Count(got, "<li>"); c != len(posts) {
		t.Fatalf("item count = %d, want %d", c, len(posts))
	}
	if strings.Contains(got, "no-results") {
		t.Error("non-empty list should not render the placeholder")
	}
	zi := strings.Index(got, ">Zebra</a>")
	ai := strings.Index(got, ">Alpha</a>")
	mi := strings.Index(got, ">Middle</a>")
	if !(zi >= 0 && zi < ai && ai < mi) {
		t.Errorf("items out of input order: zebra=%d alpha=%d middle=%d", zi, ai, mi)
	}
}

func TestPostListSlugLinks(t *testing.T) {
	derived := testPost("hello-world.mdx", "Hello")
	explicit := testPost("2020/some-file.md", "Explicit")
	explicit.Meta.Slug = "chosen-slug"

	got := renderString(t, PostList([]content.Post{derived, explicit}))
	if !strings.Contains(got, `<a class="title" href="/blog/hello-world">Hello</a>`) {
		t.Errorf("derived slug link missing: %q", got)
	}
	if !strings.Contains(got, `<a class="title" href="/blog/chosen-slug">Explicit</a>`) {
		t.Errorf("explicit slug link missing: %q", got)
	}
	if strings.Contains(got, "some-file") {
		t.Errorf("explicit slug should win over file path: %q", got)
	}
}

func TestPostListParallaxCover(t *testing.T) {
	special := testPost("spring-parallax-framer-motion-guide.mdx", "Parallax")
	special.Meta.Image = "/public/covers/parallax.png"
	plain := testPost("plain.md", "Plain")

	got := renderString(t, PostList([]content.Post{special}))
	if strings.Count(got, `class="parallax-cover"`) != 1 {
		t.Errorf("parallax cover missing: %q", got)
	}
	if !strings.Contains(got, `href="/blog/spring-parallax-framer-motion-guide"`) {
		t.Errorf("parallax link missing: %q", got)
	}
	for _, want := range []string{`class="blog-image"`, `class="title"`, `class="summary"`, `class="meta"`} {
		if !strings.Contains(got, want) {
			t.Errorf("parallax post should still render %s: %q", want, got)
		}
	}

	got = renderString(t, PostList([]content.Post{plain}))
	if strings.Contains(got, "parallax") {
		t.Errorf("regular post should not get a parallax cover: %q", got)
	}
}

func TestPostListExplicitParallaxSlug(t *testing.T) {
	p := testPost("renamed.md", "Renamed")
	p.Meta.Slug = "spring-parallax-framer-motion-guide"
	got := renderString(t, PostList([]content.Post{p}))
	if !strings.Contains(got, `class="parallax-cover"`) {
		t.Errorf("explicit parallax slug should render the cover: %q", got)
	}
}

func TestPostListImage(t *testing.T) {
	withImage := testPost("pic.md", "Pic")
	withImage.Meta.Image = "/public/covers/pic.png"
	withImage.Meta.ImageWidth = 800
	withImage.Meta.ImageHeight = 400

	got := renderString(t, PostList([]content.Post{withImage}))
	if !strings.Contains(got, `<a class="cover" href="/blog/pic" aria-label="Pic">`) {
		t.Errorf("cover link missing: %q", got)
	}
	if !strings.Contains(got, `src="/public/covers/pic.png"`) || !strings.Contains(got, `width="800" height="400"`) {
		t.Errorf("image attributes missing: %q", got)
	}

	got = renderString(t, PostList([]content.Post{testPost("text.md", "Text")}))
	if strings.Contains(got, "<img") || strings.Contains(got, `class="cover"`) {
		t.Errorf("post without image should not render a cover: %q", got)
	}
	for _, want := range []string{">Text</a>", "Summary of Text", "Published on"} {
		if !strings.Contains(got, want) {
			t.Errorf("post without image missing %q: %q", want, got)
		}
	}
}

func TestPostListMetaLine(t *testing.T) {
	got := renderString(t, PostList([]content.Post{testPost("a.md", "A")}))
	want := `<p class="meta">Published on <time datetime="2021-03-04">March 04, 2021</time> &middot; 3 min read</p>`
	if !strings.Contains(got, want) {
		t.Errorf("meta line = %q, want %q", got, want)
	}
}

func TestPostListEscapes(t *testing.T) {
	p := testPost("x.md", `<script>alert("x")</script>`)
	got := renderString(t, PostList([]content.Post{p}))
	if strings.Contains(got, "<script>") {
		t.Errorf("title not escaped: %q", got)
	}
}

func TestPostListDateErrorPropagates(t *testing.T) {
	p := testPost("bad.md", "Bad")
	p.Meta.PublishedAt = "someday"
	var buf bytes.Buffer
	if err := PostList([]content.Post{p}).Render(context.Background(), &buf); err == nil {
		t.Fatal("expected date formatting error")
	}
}

func TestBlogImageUnsafeSource(t *testing.T) {
	got := renderString(t, BlogImage("javascript:alert(1)", "x", 0, 0))
	if strings.Contains(got, "javascript:") {
		t.Errorf("unsafe src not sanitized: %q", got)
	}
	if strings.Contains(got, "width=") {
		t.Errorf("unknown dimensions should be omitted: %q", got)
	}
}
