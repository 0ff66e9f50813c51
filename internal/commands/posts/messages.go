package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	validateDirectoryMessageType = "blog.posts.validate_directory"
	renderDirectoryMessageType   = "blog.posts.render_directory"
)

// ValidateDirectoryCommand checks every Markdown post under Directory against
// the front-matter contract. With FailFast the run stops at the first
// malformed document; otherwise every issue is collected and reported.
type ValidateDirectoryCommand struct {
	// Directory selects the filesystem path holding the Markdown posts.
	Directory string `json:"directory"`
	// Pattern overrides the file glob used to discover posts.
	Pattern string `json:"pattern,omitempty"`
	// FailFast stops at the first malformed document instead of collecting all issues.
	FailFast bool `json:"fail_fast,omitempty"`
}

// Type implements command.Message.
func (ValidateDirectoryCommand) Type() string { return validateDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ValidateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.posts.validate_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// RenderDirectoryCommand loads every post under Directory and renders each
// Markdown body to HTML. DryRun loads and validates without invoking the
// renderer, which is useful for pre-publish checks.
type RenderDirectoryCommand struct {
	// Directory selects the filesystem path holding the Markdown posts.
	Directory string `json:"directory"`
	// Pattern overrides the file glob used to discover posts.
	Pattern string `json:"pattern,omitempty"`
	// DryRun loads and validates posts without rendering their bodies.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (RenderDirectoryCommand) Type() string { return renderDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd RenderDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.posts.render_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
