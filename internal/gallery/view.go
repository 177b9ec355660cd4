package gallery

import (
	"strings"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/content"
)

// Entry is a catch decorated with its resolved lure. Product and Category
// stay zero-valued for dangling or absent references; that is never an error.
type Entry struct {
	content.Catch
	Product  *content.Product `json:"product,omitempty"`
	Category string           `json:"category,omitempty"`
}

// Filter is the current gallery filter state. Zero values mean "any".
type Filter struct {
	Category     string // category of the referenced lure
	LureID       string
	Query        string
	FeaturedOnly bool
}

// BuildEntries resolves each catch's lure cross-reference against the
// product index and drops records that are not displayable (drafts, no
// first image). Build order is preserved.
func BuildEntries(catches []content.Catch, store *catalog.Store) []Entry {
	entries := make([]Entry, 0, len(catches))
	for _, c := range catches {
		if c.Status == content.StatusDraft {
			continue
		}
		if len(c.Images) == 0 || c.Images[0].Src == "" {
			continue
		}

		entry := Entry{Catch: c}
		if c.LureID != "" {
			if p, ok := store.ProductByID(c.LureID); ok {
				prod := p
				entry.Product = &prod
				entry.Category = p.Category
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// Apply filters the entries. Like the catalog engine it only removes
// elements; the artifact's sort order carries through untouched.
func Apply(entries []Entry, f Filter) []Entry {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.LureID != "" && e.LureID != f.LureID {
			continue
		}
		if f.FeaturedOnly && !e.Featured {
			continue
		}
		if query != "" && !strings.Contains(haystack(e), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// haystack is the lowercase search text for an entry: title, angler,
// location, species, tags, plus the resolved lure's name and category.
func haystack(e Entry) string {
	parts := []string{e.Title, e.Angler, e.Location, e.Species}
	parts = append(parts, e.Tags...)
	if e.Product != nil {
		parts = append(parts, e.Product.Name)
	}
	if e.Category != "" {
		parts = append(parts, e.Category)
	}

	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}
