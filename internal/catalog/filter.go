package catalog

import (
	"strings"

	"github.com/example/riplures/internal/content"
)

// Filter is the current catalog filter state. Zero values mean "any".
type Filter struct {
	Category      string
	Query         string
	FeaturedOnly  bool
	IncludeHidden bool
}

// Visible returns the browsable subset: drafts are always excluded (defense
// in depth; the build already stripped them) and hidden products only appear
// when the admin preview flag is set. Relative order is preserved.
func Visible(products []content.Product, includeHidden bool) []content.Product {
	out := make([]content.Product, 0, len(products))
	for _, p := range products {
		if p.Status == content.StatusDraft {
			continue
		}
		if p.Status == content.StatusHidden && !includeHidden {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Apply filters the product list. It only removes elements — sort order is a
// build-time concern and the input's relative order is preserved.
func Apply(products []content.Product, f Filter) []content.Product {
	visible := Visible(products, f.IncludeHidden)
	query := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.ToLower(strings.TrimSpace(f.Category))

	out := make([]content.Product, 0, len(visible))
	for _, p := range visible {
		if category != "" && p.Category != category {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery is a case-insensitive substring match over name, description
// and tags.
func matchesQuery(p content.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories derives the facet set offered to the filter UI: distinct
// non-empty categories present in the visible subset, in first-appearance
// order.
func Categories(products []content.Product) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range Visible(products, false) {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
