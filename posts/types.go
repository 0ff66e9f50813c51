package posts

import (
	"bytes"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// DefaultLayout is the template key assumed when a post's front-matter does
// not name one. The key stays opaque; resolving it is the renderer's job.
const DefaultLayout = "default"

// FrontMatter re-exports the shared front-matter contract so callers can stay
// within this package.
type FrontMatter = interfaces.FrontMatter

// Post is a single content document: required metadata plus an opaque
// Markdown body. Posts are immutable once parsed; the only field written
// afterwards is HTML, cached by Render.
type Post struct {
	// ID is derived deterministically from the slug, so the same document
	// always carries the same identity across runs.
	ID           uuid.UUID             `json:"id"`
	Path         string                `json:"path,omitempty"`
	FrontMatter  interfaces.FrontMatter `json:"frontmatter"`
	Body         []byte                `json:"body"`
	HTML         []byte                `json:"html,omitempty"`
	Checksum     []byte                `json:"checksum,omitempty"`
	LastModified time.Time             `json:"last_modified,omitempty"`
}

// Title returns the post title.
func (p *Post) Title() string { return p.FrontMatter.Title }

// Slug returns the canonical slug, always populated after parsing.
func (p *Post) Slug() string { return p.FrontMatter.Slug }

// Date returns the publication date.
func (p *Post) Date() time.Time { return p.FrontMatter.Date }

// Layout returns the template key, never empty after parsing.
func (p *Post) Layout() string { return p.FrontMatter.Layout }

// LayoutID returns the deterministic identifier of the post's layout, so the
// external renderer can key templates the same way posts are keyed.
func (p *Post) LayoutID() uuid.UUID {
	return identity.LayoutUUID(p.FrontMatter.Layout)
}

// Draft reports whether the author marked the post as unpublished.
func (p *Post) Draft() bool { return p.FrontMatter.Draft }

// PublishedAt reports whether the post is visible at the given instant:
// not a draft and not dated in the future.
func (p *Post) PublishedAt(now time.Time) bool {
	if p.FrontMatter.Draft {
		return false
	}
	return !p.FrontMatter.Date.After(now)
}

// Equal reports whether two posts carry the same metadata and body.
// Provenance (path, checksum, timestamps) and cached HTML are ignored so a
// round-trip through Encode and Parse compares equal.
func (p *Post) Equal(other *Post) bool {
	if p == nil || other == nil {
		return p == other
	}
	a, b := p.FrontMatter, other.FrontMatter
	if a.Title != b.Title || a.Slug != b.Slug || a.Layout != b.Layout {
		return false
	}
	if !a.Date.Equal(b.Date) {
		return false
	}
	if a.Summary != b.Summary || a.Author != b.Author || a.Draft != b.Draft {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	if !reflect.DeepEqual(normalizeCustom(a.Custom), normalizeCustom(b.Custom)) {
		return false
	}
	return bytes.Equal(p.Body, other.Body)
}

func normalizeCustom(custom map[string]any) map[string]any {
	if len(custom) == 0 {
		return nil
	}
	return custom
}

// SortByDate orders posts newest first, breaking ties by slug so the result
// is deterministic for same-day posts.
func SortByDate(list []*Post) {
	sortPosts(list)
}

// FindBySlug returns the post with the given slug or ErrPostNotFound.
func FindBySlug(list []*Post, slug string) (*Post, error) {
	for _, post := range list {
		if post != nil && post.Slug() == slug {
			return post, nil
		}
	}
	return nil, ErrPostNotFound
}

// Published filters the list down to posts visible at the given instant,
// preserving order.
func Published(list []*Post, now time.Time) []*Post {
	out := make([]*Post, 0, len(list))
	for _, post := range list {
		if post != nil && post.PublishedAt(now) {
			out = append(out, post)
		}
	}
	return out
}
