package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/posts"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runValidate(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("blog validate: %v", err)
	}
}

func runValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("blog-validate", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	failFast := fs.Bool("fail-fast", false, "Stop at the first malformed post instead of collecting all issues")
	quiet := fs.Bool("quiet", true, "Silence runtime logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		Quiet:      *quiet,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	factory := func(string, string) (postscmd.PostStore, error) {
		return module.Posts, nil
	}
	sink := func(_ string, issues []*posts.MalformedFrontMatterError) {
		for _, issue := range issues {
			fmt.Fprintf(out, "%s: %v\n", issue.Path, issue.Reason)
		}
	}

	handler := postscmd.NewValidateDirectoryHandler(factory, module.Logger, sink)

	err = handler.Execute(context.Background(), postscmd.ValidateDirectoryCommand{
		Directory: *contentDir,
		Pattern:   *pattern,
		FailFast:  *failFast,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "all posts are valid")
	return nil
}
