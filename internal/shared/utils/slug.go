package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug converts a name into a URL-safe slug:
// "Dog Food Premium" -> "dog-food-premium"
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug appends a numeric suffix until the slug does not
// collide with any of the existing ones.
func GenerateUniqueSlug(name string, existing []string) string {
	base := GenerateSlug(name)

	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}

	if !taken[base] {
		return base
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}
