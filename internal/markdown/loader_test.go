package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func postFile(title, date string) *fstest.MapFile {
	return &fstest.MapFile{
		Data: []byte("---\ntitle: \"" + title + "\"\ndate: " + date + "\n---\nBody of " + title + ".\n"),
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/hello.md":        postFile("Hello", "2020-01-01"),
		"posts/second.md":       postFile("Second", "2020-02-01"),
		"posts/nested/third.md": postFile("Third", "2020-03-01"),
		"posts/notes.txt":       {Data: []byte("not markdown")},
	}
}

func TestLoaderLoadFileComputesChecksum(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Pattern: "*.md", Recursive: true})

	result, err := loader.LoadFile(context.Background(), "posts/hello.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if result.Document.FrontMatter.Title != "Hello" {
		t.Fatalf("unexpected title %q", result.Document.FrontMatter.Title)
	}
	if len(result.Document.Checksum) != 32 {
		t.Fatalf("expected sha256 checksum, got %d bytes", len(result.Document.Checksum))
	}
	if len(result.Source) == 0 {
		t.Fatal("expected raw source to be carried alongside the document")
	}
}

func TestLoaderLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Pattern: "*.md", Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), "posts", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(results))
	}
	// Deterministic path ordering.
	if results[0].Document.FilePath != "posts/hello.md" {
		t.Fatalf("unexpected first document %q", results[0].Document.FilePath)
	}
}

func TestLoaderLoadDirectoryNonRecursive(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Pattern: "*.md", Recursive: false})

	results, err := loader.LoadDirectory(context.Background(), "posts", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected nested directory to be skipped, got %d documents", len(results))
	}
}

func TestLoaderLoadDirectoryFailsFastOnMalformed(t *testing.T) {
	fsys := testFS()
	fsys["posts/broken.md"] = &fstest.MapFile{Data: []byte("---\ntitle: \"Broken\"\nno closing delimiter\n")}

	loader := NewLoader(fsys, LoaderConfig{Pattern: "*.md", Recursive: true})

	if _, err := loader.LoadDirectory(context.Background(), "posts", LoadParams{}); err == nil {
		t.Fatal("expected malformed document to abort directory load")
	}
}

func TestLoaderWalkReportsPerFileErrors(t *testing.T) {
	fsys := testFS()
	fsys["posts/broken.md"] = &fstest.MapFile{Data: []byte("---\ntitle: \"Broken\"\nno closing delimiter\n")}

	loader := NewLoader(fsys, LoaderConfig{Pattern: "*.md", Recursive: true})

	var loaded, failed int
	err := loader.Walk(context.Background(), "posts", LoadParams{}, func(path string, result *DocumentResult, loadErr error) error {
		if loadErr != nil {
			failed++
			return nil
		}
		loaded++
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if loaded != 3 {
		t.Fatalf("expected 3 loaded documents, got %d", loaded)
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed document, got %d", failed)
	}
}

func TestLoaderPatternOverride(t *testing.T) {
	fsys := testFS()
	fsys["posts/page.markdown"] = postFile("Page", "2020-04-01")

	loader := NewLoader(fsys, LoaderConfig{Pattern: "*.md", Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), "posts", LoadParams{Pattern: "*.markdown"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 || results[0].Document.FrontMatter.Title != "Page" {
		t.Fatalf("expected pattern override to match only .markdown files, got %d", len(results))
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Pattern: "*.md", Recursive: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadDirectory(ctx, "posts", LoadParams{}); err == nil {
		t.Fatal("expected cancelled context to abort the load")
	}
}
