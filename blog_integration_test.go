package blog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	blog "github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/posts"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func newModule(t *testing.T, dir string) *blog.Module {
	t.Helper()

	cfg := blog.DefaultConfig()
	cfg.Content.Dir = dir
	cfg.Logging.Provider = "noop"

	module, err := blog.New(cfg)
	if err != nil {
		t.Fatalf("failed to build module: %v", err)
	}
	return module
}

func TestModuleLoadsPostsFromDisk(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hello.md", "---\ntitle: Hello\ndate: 2020-01-01\n---\nBody text.\n")
	writeFixture(t, dir, "second.md", "---\ntitle: Second\ndate: 2021-01-01\n---\nMore.\n")

	module := newModule(t, dir)

	list, err := module.Posts().LoadDirectory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(list))
	}
	if list[0].Slug() != "second" {
		t.Fatalf("expected newest post first, got %q", list[0].Slug())
	}
	if list[1].Layout() != blog.DefaultLayout {
		t.Fatalf("expected default layout, got %q", list[1].Layout())
	}
}

func TestModuleParseMatchesPackageParse(t *testing.T) {
	post, err := blog.Parse("---\ntitle: Hello\ndate: 2020-01-01\n---\nBody text.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Title() != "Hello" || post.Layout() != blog.DefaultLayout {
		t.Fatalf("unexpected post %+v", post.FrontMatter)
	}

	encoded, err := blog.Encode(post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := blog.Parse(string(encoded))
	if err != nil {
		t.Fatalf("unexpected error re-parsing: %v", err)
	}
	if !post.Equal(decoded) {
		t.Fatal("expected encode/parse round trip to preserve the post")
	}
}

func TestModuleSurfacesMalformedFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bad.md", "---\ndate: 2020-01-01\n---\nNo title.\n")

	module := newModule(t, dir)

	_, err := module.Posts().LoadDirectory(context.Background())
	if !errors.Is(err, posts.ErrMalformedFrontMatter) {
		t.Fatalf("expected malformed front matter error, got %v", err)
	}
	if !errors.Is(err, posts.ErrTitleRequired) {
		t.Fatalf("expected missing title reason, got %v", err)
	}
}

func TestModuleValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "good.md", "---\ntitle: Good\ndate: 2020-01-01\n---\nBody.\n")
	writeFixture(t, dir, "bad.md", "---\ntitle: Bad\ndate: \"not a date\"\n---\nBody.\n")

	module := newModule(t, dir)

	err := module.ValidateDirectoryHandler().Execute(context.Background(), postscmd.ValidateDirectoryCommand{
		Directory: dir,
	})
	if err == nil {
		t.Fatal("expected validation command to fail")
	}
	if !errors.Is(err, posts.ErrMalformedFrontMatter) {
		t.Fatalf("expected malformed front matter category, got %v", err)
	}
}

func TestModuleRenderCommandRendersPosts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hello.md", "---\ntitle: Hello\ndate: 2020-01-01\n---\n# Heading\n")

	module := newModule(t, dir)

	err := module.RenderDirectoryHandler().Execute(context.Background(), postscmd.RenderDirectoryCommand{
		Directory: dir,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
