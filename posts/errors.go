package posts

import (
	"errors"
	"fmt"
)

// ErrMalformedFrontMatter tags every parse failure: missing or unterminated
// header, broken YAML, absent required fields, or an uninterpretable date.
// Callers classify with errors.Is rather than message inspection.
var ErrMalformedFrontMatter = errors.New("posts: malformed front matter")

// Sentinel reasons carried inside a MalformedFrontMatterError so callers can
// distinguish the individual failure modes.
var (
	ErrTitleRequired = errors.New("posts: front matter title is required")
	ErrDateRequired  = errors.New("posts: front matter date is required")
	ErrDateInvalid   = errors.New("posts: front matter date is invalid")
	ErrSlugInvalid   = errors.New("posts: front matter slug is invalid")
)

// ErrPostNotFound reports a slug lookup that matched nothing.
var ErrPostNotFound = errors.New("posts: post not found")

// MalformedFrontMatterError describes why a document failed to parse. Path is
// empty when the source was an in-memory string rather than a file.
type MalformedFrontMatterError struct {
	Path   string
	Reason error
}

func (e *MalformedFrontMatterError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed front matter: %v", e.Reason)
	}
	return fmt.Sprintf("malformed front matter in %s: %v", e.Path, e.Reason)
}

// Unwrap exposes both the category sentinel and the specific reason, so
// errors.Is works against ErrMalformedFrontMatter and against the reason
// sentinels alike.
func (e *MalformedFrontMatterError) Unwrap() []error {
	return []error{ErrMalformedFrontMatter, e.Reason}
}

func malformed(path string, reason error) error {
	return &MalformedFrontMatterError{Path: path, Reason: reason}
}
