package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify converts arbitrary text into a URL-safe token: lowercase, spaces
// replaced with hyphens, every character outside [a-z0-9-] stripped, and
// runs of hyphens collapsed to one. Leading and trailing hyphens are kept,
// so input ending in a stripped character can leave a trailing hyphen.
// Idempotent: already-normalized input is a fixed point.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = hyphenRuns.ReplaceAllString(slug, "-")

	return slug
}
