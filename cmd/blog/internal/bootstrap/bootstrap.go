package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

// Options captures configuration for blog CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	DefaultLayout  string
	SafeMode       bool
	LogLevel       string
	LogFormat      string
	Quiet          bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the configured post store and logger.
type Module struct {
	Module *blog.Module
	Posts  *posts.Service
	Logger interfaces.Logger
}

// BuildModule constructs a blog module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()

	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive
	if trimmed := strings.TrimSpace(opts.DefaultLayout); trimmed != "" {
		cfg.Content.DefaultLayout = trimmed
	}
	cfg.Parser.SafeMode = opts.SafeMode

	if opts.Quiet {
		cfg.Logging.Provider = "noop"
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	diOpts := []blog.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, blog.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	store := module.Posts()
	if store == nil {
		return nil, fmt.Errorf("post store not configured; ensure the module is enabled")
	}

	return &Module{
		Module: module,
		Posts:  store,
		Logger: module.Logger("blog.cli"),
	}, nil
}
