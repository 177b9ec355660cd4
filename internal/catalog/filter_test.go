package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/riplures/internal/content"
)

func product(id, name, category, status string, tags ...string) content.Product {
	return content.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Status:   status,
		Tags:     tags,
		Images:   []content.Image{{Src: "/" + id + ".jpg"}},
		Variants: []content.Variant{{ID: "v1", Label: "Std", SKU: id}},
	}
}

func fixtureProducts() []content.Product {
	return []content.Product{
		product("lure-a", "Alpha Spin", "spinnerbait", content.StatusActive, "bass"),
		product("lure-b", "Bravo Jig", "jig", content.StatusActive, "finesse"),
		product("lure-c", "Charlie Top", "topwater", content.StatusHidden),
		product("lure-d", "Delta Jig", "jig", content.StatusActive, "bass", "pond"),
	}
}

func ids(products []content.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestVisible(t *testing.T) {
	visible := Visible(fixtureProducts(), false)
	assert.Equal(t, []string{"lure-a", "lure-b", "lure-d"}, ids(visible))

	withHidden := Visible(fixtureProducts(), true)
	assert.Equal(t, []string{"lure-a", "lure-b", "lure-c", "lure-d"}, ids(withHidden))
}

func TestVisible_DraftAlwaysExcluded(t *testing.T) {
	products := append(fixtureProducts(), product("lure-x", "X", "jig", content.StatusDraft))
	assert.NotContains(t, ids(Visible(products, true)), "lure-x")
}

func TestApply_Category(t *testing.T) {
	filtered := Apply(fixtureProducts(), Filter{Category: "jig"})
	assert.Equal(t, []string{"lure-b", "lure-d"}, ids(filtered))
}

func TestApply_Query(t *testing.T) {
	t.Run("matches name case-insensitively", func(t *testing.T) {
		filtered := Apply(fixtureProducts(), Filter{Query: "ALPHA"})
		assert.Equal(t, []string{"lure-a"}, ids(filtered))
	})

	t.Run("matches tags", func(t *testing.T) {
		filtered := Apply(fixtureProducts(), Filter{Query: "pond"})
		assert.Equal(t, []string{"lure-d"}, ids(filtered))
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		assert.Empty(t, Apply(fixtureProducts(), Filter{Query: "muskie"}))
	})
}

func TestApply_PreservesOrder(t *testing.T) {
	filtered := Apply(fixtureProducts(), Filter{Query: "bass"})
	assert.Equal(t, []string{"lure-a", "lure-d"}, ids(filtered),
		"filtering only removes elements; it never re-sorts")
}

func TestApply_FeaturedOnly(t *testing.T) {
	products := fixtureProducts()
	products[1].Featured = true

	filtered := Apply(products, Filter{FeaturedOnly: true})
	assert.Equal(t, []string{"lure-b"}, ids(filtered))
}

func TestCategories(t *testing.T) {
	facets := Categories(fixtureProducts())
	// hidden lure-c is the only topwater, so that facet is absent
	assert.Equal(t, []string{"spinnerbait", "jig"}, facets)
}

func TestWindow(t *testing.T) {
	w := NewWindow(24)
	require.Equal(t, 24, w.Size())

	w.Grow()
	assert.Equal(t, 48, w.Size())

	w.Reset()
	assert.Equal(t, 24, w.Size(), "any filter change snaps the window back")

	assert.Equal(t, 10, w.Clip(10))
	assert.Equal(t, 24, w.Clip(100))
}
