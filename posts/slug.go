package posts

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer is the normalizer contract used for post slugs.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the normalizer posts are keyed with.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug rewrites value into URL-safe slug form.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether value already satisfies the slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// DeriveSlug maps a source file path to its post slug: the base name with
// the extension stripped, normalized to URL-safe form.
func DeriveSlug(filePath string) (string, error) {
	base := path.Base(strings.TrimSuffix(filePath, path.Ext(filePath)))
	return NormalizeSlug(base)
}
