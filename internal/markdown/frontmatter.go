package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrMalformed tags every front-matter failure (missing or unterminated
// header, broken YAML, bad field values) so callers can classify without
// inspecting message text.
var ErrMalformed = errors.New("markdown: malformed front matter")

// ErrInvalidDate reports a front-matter date that could not be interpreted as
// a calendar date.
var ErrInvalidDate = errors.New("markdown: front matter date is invalid")

// dateLayouts lists the string forms accepted for the date field, tried in
// order. YAML timestamps arrive as time.Time and skip this path entirely.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. The front-matter block is mandatory: a document
// without a leading delimited header, or with an unterminated one, fails.
// It returns the structured frontmatter and the Markdown body without
// delimiters.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.MustParse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	fm, err := envelopeToFrontMatter(meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return fm, body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

// EncodeDocument serializes the document back into front-matter plus body.
// The output round-trips through ParseFrontMatter to equivalent metadata.
func EncodeDocument(doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown: cannot encode nil document")
	}

	env := frontMatterToEnvelope(doc.FrontMatter)
	header, err := yaml.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.Write(doc.Body)
	return buf.Bytes(), nil
}

// frontMatterEnvelope is the YAML shape read from disk. Date stays untyped
// because authors write either a bare YAML timestamp or a quoted string;
// both are coerced afterwards.
type frontMatterEnvelope struct {
	Title   string         `yaml:"title,omitempty"`
	Slug    string         `yaml:"slug,omitempty"`
	Date    any            `yaml:"date,omitempty"`
	Layout  string         `yaml:"layout,omitempty"`
	Summary string         `yaml:"summary,omitempty"`
	Author  string         `yaml:"author,omitempty"`
	Tags    []string       `yaml:"tags,omitempty"`
	Draft   bool           `yaml:"draft,omitempty"`
	Custom  map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) (interfaces.FrontMatter, error) {
	date, err := coerceDate(env.Date)
	if err != nil {
		return interfaces.FrontMatter{}, err
	}

	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+8)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if !date.IsZero() {
		raw["date"] = date
	}
	if env.Layout != "" {
		raw["layout"] = env.Layout
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:   env.Title,
		Slug:    env.Slug,
		Date:    date,
		Layout:  env.Layout,
		Summary: env.Summary,
		Author:  env.Author,
		Tags:    append([]string(nil), env.Tags...),
		Draft:   env.Draft,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
	}, nil
}

func frontMatterToEnvelope(fm interfaces.FrontMatter) frontMatterEnvelope {
	env := frontMatterEnvelope{
		Title:   fm.Title,
		Slug:    fm.Slug,
		Layout:  fm.Layout,
		Summary: fm.Summary,
		Author:  fm.Author,
		Tags:    append([]string(nil), fm.Tags...),
		Draft:   fm.Draft,
		Custom:  cloneMap(fm.Custom),
	}
	if !fm.Date.IsZero() {
		env.Date = formatDate(fm.Date)
	}
	return env
}

// coerceDate accepts the YAML value forms a date field shows up as. A nil
// value yields the zero time so required-field validation can report it.
func coerceDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	default:
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, value)
	}
}

// formatDate renders date-only values the way authors write them; timestamps
// with a clock component keep full RFC3339 precision.
func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
