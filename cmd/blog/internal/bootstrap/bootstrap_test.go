package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildModuleWiresPostStore(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Hello\ndate: 2020-01-01\n---\nBody text.\n"
	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	module, err := BuildModule(Options{ContentDir: dir, Recursive: true, Quiet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if module.Posts == nil || module.Logger == nil || module.Module == nil {
		t.Fatal("expected module, post store, and logger to be configured")
	}

	post, err := module.Posts.Load(context.Background(), "hello.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Slug() != "hello" {
		t.Fatalf("expected slug hello, got %q", post.Slug())
	}
}

func TestBuildModuleAppliesDefaultLayoutOverride(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Hello\ndate: 2020-01-01\n---\nBody text.\n"
	if err := os.WriteFile(filepath.Join(dir, "hello.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	module, err := BuildModule(Options{ContentDir: dir, Recursive: true, DefaultLayout: "article", Quiet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	post, err := module.Posts.Load(context.Background(), "hello.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Layout() != "article" {
		t.Fatalf("expected overridden layout, got %q", post.Layout())
	}
}
