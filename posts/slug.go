package posts

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// deriveSlug resolves the canonical slug for a post. Prefers the explicit
// front-matter slug, then the normalized title, then the file name without
// its extension. An explicit slug that fails normalization is rejected rather
// than silently rewritten.
func deriveSlug(explicit, title, path string) (string, error) {
	if value := strings.TrimSpace(explicit); value != "" {
		if IsValidSlug(value) {
			return value, nil
		}
		normalized, err := NormalizeSlug(value)
		if err != nil || normalized == "" {
			return "", ErrSlugInvalid
		}
		return normalized, nil
	}

	if value := strings.TrimSpace(title); value != "" {
		if normalized, err := NormalizeSlug(value); err == nil && normalized != "" {
			return normalized, nil
		}
	}

	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if normalized, err := NormalizeSlug(base); err == nil && normalized != "" {
		return normalized, nil
	}
	return "", ErrSlugInvalid
}
