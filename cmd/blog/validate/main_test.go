package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	"github.com/goliatone/go-blog/posts"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func TestRunValidateCleanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hello.md", "---\ntitle: Hello\ndate: 2020-01-01\n---\nBody text.\n")

	var out bytes.Buffer
	err := runValidate([]string{"--content-dir", dir}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "all posts are valid") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

func TestRunValidateReportsIssues(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "good.md", "---\ntitle: Good\ndate: 2020-01-01\n---\nBody.\n")
	writeFixture(t, dir, "bad.md", "---\ndate: 2020-01-01\n---\nMissing title.\n")

	var out bytes.Buffer
	err := runValidate([]string{"--content-dir", dir}, &out)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !errors.Is(err, posts.ErrMalformedFrontMatter) {
		t.Fatalf("expected malformed front matter error, got %v", err)
	}
	if !strings.Contains(out.String(), "bad.md") {
		t.Fatalf("expected issue listing to include bad.md, got %q", out.String())
	}
}

func TestRunValidateBootstrapFailurePropagates(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	err := runValidate([]string{"--content-dir", t.TempDir()}, &out)
	if err == nil || !strings.Contains(err.Error(), "bootstrap module") {
		t.Fatalf("expected bootstrap error, got %v", err)
	}
}
