package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into its URL-safe form: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, edge hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
