package blog

import (
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// PostService exports the post store contract for consumers of the blog package.
type PostService = posts.Service

// Post exports the parsed post type.
type Post = posts.Post

// FrontMatter exports the front-matter metadata type.
type FrontMatter = posts.FrontMatter

// MalformedFrontMatterError exports the parse failure type.
type MalformedFrontMatterError = posts.MalformedFrontMatterError

// DefaultLayout is the layout key assumed when front-matter omits one.
const DefaultLayout = posts.DefaultLayout

// Parse converts a single document's text into a Post. See posts.Parse.
func Parse(documentText string) (*Post, error) {
	return posts.Parse(documentText)
}

// Encode serializes a post back into front-matter plus body. See posts.Encode.
func Encode(p *Post) ([]byte, error) {
	return posts.Encode(p)
}

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// Option forwards DI overrides to the container.
type Option = di.Option

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithMarkdownService overrides the filesystem-backed Markdown service.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return di.WithMarkdownService(svc)
}

// WithPostService overrides the post store assembled from configuration.
func WithPostService(svc *posts.Service) Option {
	return di.WithPostService(svc)
}

// New constructs a blog module using the provided configuration and optional
// DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Posts returns the configured post store.
func (m *Module) Posts() *PostService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PostService()
}

// Markdown returns the Markdown service backing the post store.
func (m *Module) Markdown() interfaces.MarkdownService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownService()
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(module string) interfaces.Logger {
	return m.container.Logger(module)
}

// ValidateDirectoryHandler returns the command handler for validation runs.
func (m *Module) ValidateDirectoryHandler() *postscmd.ValidateDirectoryHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ValidateDirectoryHandler()
}

// RenderDirectoryHandler returns the command handler for render runs.
func (m *Module) RenderDirectoryHandler() *postscmd.RenderDirectoryHandler {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.RenderDirectoryHandler()
}
