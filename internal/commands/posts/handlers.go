package postscmd

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/posts"
)

const (
	validateOperation = "posts.validate_directory"
	renderOperation   = "posts.render_directory"
)

// ErrRenderingDisabled is returned when the rendering feature flag is
// disabled at runtime.
var ErrRenderingDisabled = errors.New("posts command: rendering disabled")

var (
	_ command.Commander[ValidateDirectoryCommand] = (*ValidateDirectoryHandler)(nil)
	_ command.Commander[RenderDirectoryCommand]   = (*RenderDirectoryHandler)(nil)
)

// PostStore is the slice of the post service the command handlers depend on.
type PostStore interface {
	LoadDirectory(ctx context.Context) ([]*posts.Post, error)
	ValidateDirectory(ctx context.Context) ([]*posts.MalformedFrontMatterError, error)
	Render(ctx context.Context, post *posts.Post, opts interfaces.ParseOptions) ([]byte, error)
}

// StoreFactory builds a post store bound to the requested directory. Commands
// carry the directory so one handler can serve many content roots.
type StoreFactory func(directory, pattern string) (PostStore, error)

// DirectoryInvalidError reports the malformed documents found during a
// validation run.
type DirectoryInvalidError struct {
	Directory string
	Issues    []*posts.MalformedFrontMatterError
}

func (e *DirectoryInvalidError) Error() string {
	return fmt.Sprintf("posts command: %d malformed document(s) in %s", len(e.Issues), e.Directory)
}

func (e *DirectoryInvalidError) Unwrap() error {
	return posts.ErrMalformedFrontMatter
}

// IssueSink receives the issues collected by a validation run before the
// handler returns, so callers can report them without re-walking the tree.
type IssueSink func(directory string, issues []*posts.MalformedFrontMatterError)

// ValidateDirectoryHandler orchestrates front-matter validation runs via the
// shared command handler foundation.
type ValidateDirectoryHandler struct {
	inner *commands.Handler[ValidateDirectoryCommand]
}

// NewValidateDirectoryHandler creates a handler that builds a post store per
// command and reports every contract violation it finds. The sink may be nil.
func NewValidateDirectoryHandler(factory StoreFactory, logger interfaces.Logger, sink IssueSink, opts ...commands.HandlerOption[ValidateDirectoryCommand]) *ValidateDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ValidateDirectoryCommand) error {
		store, err := factory(msg.Directory, msg.Pattern)
		if err != nil {
			return err
		}

		if msg.FailFast {
			if _, err := store.LoadDirectory(ctx); err != nil {
				return err
			}
			logging.WithFields(baseLogger, map[string]any{
				"directory": msg.Directory,
			}).Info("posts.command.validate_directory.clean")
			return nil
		}

		issues, err := store.ValidateDirectory(ctx)
		if err != nil {
			return err
		}
		if sink != nil {
			sink(msg.Directory, issues)
		}

		logging.WithFields(baseLogger, map[string]any{
			"directory":   msg.Directory,
			"issue_count": len(issues),
		}).Info("posts.command.validate_directory.completed")

		if len(issues) > 0 {
			return &DirectoryInvalidError{Directory: msg.Directory, Issues: issues}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateDirectoryCommand]{
		commands.WithLogger[ValidateDirectoryCommand](baseLogger),
		commands.WithOperation[ValidateDirectoryCommand](validateOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateDirectoryCommand].
func (h *ValidateDirectoryHandler) Execute(ctx context.Context, msg ValidateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderSink receives each post as it is rendered, so callers can write the
// HTML out or preview it.
type RenderSink func(post *posts.Post, html []byte)

// RenderDirectoryHandler renders every post under a directory via the shared
// command handler foundation.
type RenderDirectoryHandler struct {
	inner *commands.Handler[RenderDirectoryCommand]
}

// NewRenderDirectoryHandler creates a handler bound to a post store factory.
// The sink may be nil when callers only need the side effect of cached HTML.
func NewRenderDirectoryHandler(factory StoreFactory, logger interfaces.Logger, gates FeatureGates, sink RenderSink, opts ...commands.HandlerOption[RenderDirectoryCommand]) *RenderDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RenderDirectoryCommand) error {
		if !gates.renderingEnabled() {
			return ErrRenderingDisabled
		}

		store, err := factory(msg.Directory, msg.Pattern)
		if err != nil {
			return err
		}

		list, err := store.LoadDirectory(ctx)
		if err != nil {
			return err
		}

		rendered := 0
		for _, post := range list {
			if msg.DryRun {
				continue
			}
			html, err := store.Render(ctx, post, interfaces.ParseOptions{})
			if err != nil {
				return err
			}
			rendered++
			if sink != nil {
				sink(post, html)
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"directory":      msg.Directory,
			"post_count":     len(list),
			"rendered_count": rendered,
			"dry_run":        msg.DryRun,
		}).Info("posts.command.render_directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDirectoryCommand]{
		commands.WithLogger[RenderDirectoryCommand](baseLogger),
		commands.WithOperation[RenderDirectoryCommand](renderOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderDirectoryCommand].
func (h *RenderDirectoryHandler) Execute(ctx context.Context, msg RenderDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
