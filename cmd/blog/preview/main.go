package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		layout     = flag.String("default-layout", "", "Layout key applied when front matter omits one")
		filePath   = flag.String("file", "", "Markdown post to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
		safeMode   = flag.Bool("safe-mode", false, "Strip raw HTML from the rendered output")
		quiet      = flag.Bool("quiet", false, "Silence runtime logging")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		DefaultLayout: *layout,
		SafeMode:      *safeMode,
		Quiet:         *quiet,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	post, err := module.Posts.Load(ctx, *filePath)
	if err != nil {
		log.Fatalf("load post: %v", err)
	}

	var html []byte
	if *renderHTML {
		if html, err = module.Posts.Render(ctx, post, interfaces.ParseOptions{}); err != nil {
			log.Fatalf("render post: %v", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nSlug: %s\nLayout: %s\nDate: %s\n\n",
		post.Path, post.Slug(), post.Layout(), post.Date().Format("2006-01-02"))

	if post.FrontMatter.Raw != nil {
		header, err := json.MarshalIndent(post.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", header)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(post.Body))
	}
}
