package di

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blog/internal/commands"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// Container wires module dependencies: logging provider, Markdown service,
// post store, and the command handlers built on top of them.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	markdownSvc    interfaces.MarkdownService
	postSvc        *posts.Service

	validateHandler *postscmd.ValidateDirectoryHandler
	renderHandler   *postscmd.RenderDirectoryHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithMarkdownService overrides the default filesystem-backed Markdown service.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		if svc != nil {
			c.markdownSvc = svc
		}
	}
}

// WithPostService overrides the post store assembled from the config.
func WithPostService(svc *posts.Service) Option {
	return func(c *Container) {
		if svc != nil {
			c.postSvc = svc
		}
	}
}

// NewContainer validates the configuration and assembles the module services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.markdownSvc == nil && cfg.Enabled {
		svc, err := markdown.NewService(markdown.Config{
			BasePath:  cfg.Content.Dir,
			Pattern:   cfg.Content.Pattern,
			Recursive: cfg.Content.Recursive,
			Parser:    parseOptions(cfg.Parser),
			Logger:    logging.MarkdownLogger(c.loggerProvider),
		}, nil)
		if err != nil {
			return nil, err
		}
		c.markdownSvc = svc
	}

	if c.postSvc == nil && cfg.Enabled {
		svc, err := posts.NewService(posts.Config{
			ContentDir:    cfg.Content.Dir,
			Pattern:       cfg.Content.Pattern,
			Recursive:     cfg.Content.Recursive,
			DefaultLayout: cfg.Content.DefaultLayout,
			Parser:        parseOptions(cfg.Parser),
		},
			posts.WithMarkdown(c.markdownSvc),
			posts.WithLogger(logging.PostsLogger(c.loggerProvider)),
		)
		if err != nil {
			return nil, err
		}
		c.postSvc = svc
	}

	if cfg.Commands.Enabled {
		c.configureCommandHandlers()
	}

	return c, nil
}

// LoggerProvider exposes the provider backing every module logger.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	if c == nil {
		return nil
	}
	return c.loggerProvider
}

// Logger returns a module-scoped logger from the configured provider.
func (c *Container) Logger(module string) interfaces.Logger {
	if c == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(c.loggerProvider, module)
}

// MarkdownService returns the configured Markdown service.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	if c == nil {
		return nil
	}
	return c.markdownSvc
}

// PostService returns the configured post store.
func (c *Container) PostService() *posts.Service {
	if c == nil {
		return nil
	}
	return c.postSvc
}

// ValidateDirectoryHandler returns the command handler for validation runs,
// or nil when the command layer is disabled.
func (c *Container) ValidateDirectoryHandler() *postscmd.ValidateDirectoryHandler {
	if c == nil {
		return nil
	}
	return c.validateHandler
}

// RenderDirectoryHandler returns the command handler for render runs, or nil
// when the command layer is disabled.
func (c *Container) RenderDirectoryHandler() *postscmd.RenderDirectoryHandler {
	if c == nil {
		return nil
	}
	return c.renderHandler
}

func (c *Container) configureCommandHandlers() {
	factory := c.storeFactory()
	gates := postscmd.FeatureGates{
		RenderingEnabled: func() bool { return c.Config.Features.Rendering },
	}

	var validateOpts []commands.HandlerOption[postscmd.ValidateDirectoryCommand]
	var renderOpts []commands.HandlerOption[postscmd.RenderDirectoryCommand]
	if timeout := c.Config.Commands.Timeout; timeout > 0 {
		validateOpts = append(validateOpts, commands.WithTimeout[postscmd.ValidateDirectoryCommand](timeout))
		renderOpts = append(renderOpts, commands.WithTimeout[postscmd.RenderDirectoryCommand](timeout))
	}

	c.validateHandler = postscmd.NewValidateDirectoryHandler(factory,
		commands.CommandLogger(c.loggerProvider, "posts.validate"), nil, validateOpts...)
	c.renderHandler = postscmd.NewRenderDirectoryHandler(factory,
		commands.CommandLogger(c.loggerProvider, "posts.render"), gates, nil, renderOpts...)
}

// storeFactory builds a post store per command directory, reusing the
// container's store when the directory matches the configured content root.
func (c *Container) storeFactory() postscmd.StoreFactory {
	return func(directory, pattern string) (postscmd.PostStore, error) {
		if c.postSvc != nil && sameContentRoot(c.Config.Content, directory, pattern) {
			return c.postSvc, nil
		}
		return posts.NewService(posts.Config{
			ContentDir:    directory,
			Pattern:       pattern,
			Recursive:     c.Config.Content.Recursive,
			DefaultLayout: c.Config.Content.DefaultLayout,
			Parser:        parseOptions(c.Config.Parser),
		}, posts.WithLogger(logging.PostsLogger(c.loggerProvider)))
	}
}

func sameContentRoot(content runtimeconfig.ContentConfig, directory, pattern string) bool {
	if strings.TrimSpace(directory) != strings.TrimSpace(content.Dir) {
		return false
	}
	return pattern == "" || pattern == content.Pattern
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "noop":
		return nil, nil
	case "", "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return nil, fmt.Errorf("di: unsupported logging provider %q", cfg.Logging.Provider)
	}
}

func parseOptions(cfg runtimeconfig.ParserConfig) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), cfg.Extensions...),
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}
