package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("blog config: content directory is required")
var ErrDefaultLayoutRequired = errors.New("blog config: default layout key cannot be blank")
var ErrCommandTimeoutInvalid = errors.New("blog config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the blog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Content  ContentConfig
	Parser   ParserConfig
	Commands CommandsConfig
	Features Features
	Logging  LoggingConfig
}

// ContentConfig captures filesystem behaviour for the post store.
type ContentConfig struct {
	// Dir is the root directory holding Markdown posts.
	Dir string
	// Pattern filters which files are treated as posts.
	Pattern string
	// Recursive walks nested directories below Dir.
	Recursive bool
	// DefaultLayout is applied when front-matter omits a layout key. The key
	// stays opaque; resolving it belongs to the external renderer.
	DefaultLayout string
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// Features toggles module functionality.
type Features struct {
	Rendering bool
	Logger    bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a filesystem-backed blog.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Dir:           "content",
			Pattern:       "*.md",
			Recursive:     true,
			DefaultLayout: "default",
		},
		Parser: ParserConfig{},
		Commands: CommandsConfig{
			Enabled: true,
		},
		Features: Features{
			Rendering: true,
			Logger:    true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Enabled {
		if strings.TrimSpace(cfg.Content.Dir) == "" {
			return ErrContentDirRequired
		}
		if cfg.Content.DefaultLayout != "" && strings.TrimSpace(cfg.Content.DefaultLayout) == "" {
			return ErrDefaultLayoutRequired
		}
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
