package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents so hosts can share a
// single parser instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows backing the post store: loading
// Markdown documents from disk, validating whole directories, and converting
// document bodies into HTML for the external renderer.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	WalkDirectory(ctx context.Context, dir string, opts LoadOptions, fn DocumentWalkFunc) error
	ValidateDirectory(ctx context.Context, dir string, opts LoadOptions) ([]Issue, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// DocumentWalkFunc receives every discovered Markdown file along with its
// parsed document or load error. Returning a non-nil error stops the walk.
type DocumentWalkFunc func(path string, doc *Document, err error) error

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so callers can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models the metadata header extracted from a post. Title and
// Date are the required fields; Layout names the external rendering template
// and stays an opaque string key. Everything the author wrote that is not a
// known field lands in Custom, while Raw preserves the full header map.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Date    time.Time      `yaml:"date" json:"date"`
	Layout  string         `yaml:"layout" json:"layout"`
	Summary string         `yaml:"summary" json:"summary"`
	Author  string         `yaml:"author" json:"author"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}

// Issue reports a single document that failed to parse during a directory
// validation pass.
type Issue struct {
	Path string
	Err  error
}
