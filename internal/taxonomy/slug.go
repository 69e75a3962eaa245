package taxonomy

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a category name into its command-line form,
// "Health & Wellness" becomes "health-wellness".
func Slug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlug.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Resolve finds a category by exact name or by slug.
func (r *Registry) Resolve(ref string) (Category, bool) {
	if c, ok := r.Lookup(ref); ok {
		return c, true
	}
	idx, ok := r.bySlug[Slug(ref)]
	if !ok {
		return Category{}, false
	}
	return clone(r.categories[idx]), true
}
