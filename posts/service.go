package posts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Config controls how the post store discovers and parses content files.
type Config struct {
	// ContentDir is the root directory holding the Markdown posts.
	ContentDir string
	// Pattern filters which files are treated as posts. Defaults to *.md.
	Pattern string
	// Recursive walks nested directories below ContentDir.
	Recursive bool
	// DefaultLayout is applied when front-matter omits a layout key.
	DefaultLayout string
	// Parser holds the default Markdown rendering options.
	Parser interfaces.ParseOptions
}

// Service is the post store: it loads Markdown documents from the content
// directory, enforces the front-matter contract, and renders bodies to HTML
// through the configured Markdown service.
type Service struct {
	cfg    Config
	md     interfaces.MarkdownService
	logger interfaces.Logger
}

// Option customises service construction.
type Option func(*Service)

// WithLogger attaches a structured logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMarkdown swaps the backing Markdown service, useful for tests and for
// hosts that share one service across modules.
func WithMarkdown(md interfaces.MarkdownService) Option {
	return func(s *Service) {
		if md != nil {
			s.md = md
		}
	}
}

// NewService builds a post store over the configured content directory. When
// no Markdown service is supplied one is constructed from the config.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	if strings.TrimSpace(cfg.DefaultLayout) == "" {
		cfg.DefaultLayout = DefaultLayout
	}

	s := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.md == nil {
		md, err := markdown.NewService(markdown.Config{
			BasePath:  cfg.ContentDir,
			Pattern:   cfg.Pattern,
			Recursive: cfg.Recursive,
			Parser:    cfg.Parser,
		}, nil)
		if err != nil {
			return nil, fmt.Errorf("posts: markdown service: %w", err)
		}
		s.md = md
	}

	return s, nil
}

// Parse converts a single document's text into a Post. The document must
// start with a delimited YAML front-matter header carrying at least a title
// and a date; anything after the closing delimiter is the Markdown body,
// kept verbatim. Failures return a MalformedFrontMatterError.
func Parse(documentText string) (*Post, error) {
	fm, body, err := markdown.ParseFrontMatter([]byte(documentText))
	if err != nil {
		return nil, malformed("", classifyParseError(err))
	}

	doc := &interfaces.Document{
		FrontMatter: fm,
		Body:        body,
	}
	return fromDocument(doc, DefaultLayout)
}

// Encode serializes the post back into front-matter plus body. Feeding the
// output through Parse yields an equal post.
func Encode(p *Post) ([]byte, error) {
	if p == nil {
		return nil, errors.New("posts: cannot encode nil post")
	}
	doc := &interfaces.Document{
		FrontMatter: p.FrontMatter,
		Body:        p.Body,
	}
	return markdown.EncodeDocument(doc)
}

// Load reads and parses a single post relative to the content directory.
func (s *Service) Load(ctx context.Context, path string) (*Post, error) {
	doc, err := s.md.Load(ctx, path, s.loadOptions())
	if err != nil {
		return nil, s.mapLoadError(path, err)
	}

	post, err := fromDocument(doc, s.cfg.DefaultLayout)
	if err != nil {
		return nil, err
	}

	logging.WithPostContext(s.logger, post.Path, post.Slug(), "load").
		Debug("post loaded")
	return post, nil
}

// LoadDirectory reads every post under the content directory, newest first.
// Posts sharing a date are ordered by slug so the listing stays stable. The
// first malformed document fails the whole read.
func (s *Service) LoadDirectory(ctx context.Context) ([]*Post, error) {
	docs, err := s.md.LoadDirectory(ctx, ".", s.loadOptions())
	if err != nil {
		return nil, s.mapLoadError("", err)
	}

	list := make([]*Post, 0, len(docs))
	for _, doc := range docs {
		post, err := fromDocument(doc, s.cfg.DefaultLayout)
		if err != nil {
			return nil, err
		}
		list = append(list, post)
	}

	sortPosts(list)

	s.logger.Debug("posts loaded", "count", len(list))
	return list, nil
}

// ValidateDirectory checks every post under the content directory and reports
// the documents that violate the front-matter contract, without stopping at
// the first failure.
func (s *Service) ValidateDirectory(ctx context.Context) ([]*MalformedFrontMatterError, error) {
	var found []*MalformedFrontMatterError

	err := s.md.WalkDirectory(ctx, ".", s.loadOptions(), func(path string, doc *interfaces.Document, loadErr error) error {
		if loadErr != nil {
			found = append(found, &MalformedFrontMatterError{
				Path:   path,
				Reason: classifyParseError(loadErr),
			})
			return nil
		}
		if _, err := fromDocument(doc, s.cfg.DefaultLayout); err != nil {
			var mfErr *MalformedFrontMatterError
			if errors.As(err, &mfErr) {
				found = append(found, mfErr)
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Path < found[j].Path
	})

	if len(found) > 0 {
		s.logger.Warn("directory validation found issues", "count", len(found))
	}
	return found, nil
}

// Render converts the post's Markdown body into HTML, caching the result on
// the post. Layout resolution stays with the external renderer; only the body
// is converted here.
func (s *Service) Render(ctx context.Context, post *Post, opts interfaces.ParseOptions) ([]byte, error) {
	if post == nil {
		return nil, errors.New("posts: cannot render nil post")
	}

	html, err := s.md.Render(ctx, post.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("posts: render %s: %w", post.Slug(), err)
	}
	post.HTML = html

	logging.WithPostContext(s.logger, post.Path, post.Slug(), "render").
		Debug("post rendered", "bytes", len(html))
	return html, nil
}

// GetBySlug loads the directory and returns the post with the given slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	list, err := s.LoadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return FindBySlug(list, slug)
}

// ListPublished loads the directory and keeps only posts visible at the given
// instant: not drafts and not dated in the future.
func (s *Service) ListPublished(ctx context.Context, now time.Time) ([]*Post, error) {
	list, err := s.LoadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return Published(list, now), nil
}

func (s *Service) loadOptions() interfaces.LoadOptions {
	recursive := s.cfg.Recursive
	return interfaces.LoadOptions{
		Recursive: &recursive,
		Pattern:   s.cfg.Pattern,
		Parser:    s.cfg.Parser,
	}
}

func (s *Service) mapLoadError(path string, err error) error {
	if errors.Is(err, markdown.ErrMalformed) {
		return malformed(path, classifyParseError(err))
	}
	return err
}

// fromDocument applies the front-matter contract to a parsed document:
// required title and date, a canonical slug, and a layout key that falls back
// to the configured default.
func fromDocument(doc *interfaces.Document, defaultLayout string) (*Post, error) {
	fm := doc.FrontMatter

	if err := validateFrontMatter(fm); err != nil {
		return nil, malformed(doc.FilePath, err)
	}

	slugValue, err := deriveSlug(fm.Slug, fm.Title, doc.FilePath)
	if err != nil {
		return nil, malformed(doc.FilePath, err)
	}
	fm.Slug = slugValue

	if strings.TrimSpace(fm.Layout) == "" {
		if strings.TrimSpace(defaultLayout) == "" {
			defaultLayout = DefaultLayout
		}
		fm.Layout = defaultLayout
	}

	return &Post{
		ID:           identity.PostUUID(slugValue),
		Path:         doc.FilePath,
		FrontMatter:  fm,
		Body:         doc.Body,
		HTML:         doc.BodyHTML,
		Checksum:     doc.Checksum,
		LastModified: doc.LastModified,
	}, nil
}

func validateFrontMatter(fm interfaces.FrontMatter) error {
	err := validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required),
		validation.Field(&fm.Date, validation.Required),
	)
	if err == nil {
		return nil
	}

	var verr validation.Errors
	if errors.As(err, &verr) {
		if _, ok := verr["title"]; ok {
			return ErrTitleRequired
		}
		if _, ok := verr["date"]; ok {
			return ErrDateRequired
		}
	}
	return err
}

// classifyParseError maps the markdown layer's failures onto the post
// sentinels so callers branch on one error vocabulary.
func classifyParseError(err error) error {
	if errors.Is(err, markdown.ErrInvalidDate) {
		return ErrDateInvalid
	}
	return err
}

func sortPosts(list []*Post) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date().Equal(list[j].Date()) {
			return list[i].Date().After(list[j].Date())
		}
		return list[i].Slug() < list[j].Slug()
	})
}
