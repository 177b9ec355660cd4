package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/content"
)

const productsJSON = `[
	{"id":"lure-spin","name":"River Spin","category":"spinnerbait","status":"active",
	 "images":[{"src":"/s.jpg"}],"variants":[{"id":"v1","label":"Std","sku":"RS"}]},
	{"id":"lure-jig","name":"Creek Jig","category":"jig","status":"active",
	 "images":[{"src":"/j.jpg"}],"variants":[{"id":"v1","label":"Std","sku":"CJ"}]}
]`

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	catchesPath := filepath.Join(dir, "catches.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(productsJSON), 0644))
	require.NoError(t, os.WriteFile(catchesPath, []byte(`[]`), 0644))
	return catalog.Load(productsPath, catchesPath)
}

func catchRecord(id, lureID string) content.Catch {
	return content.Catch{
		ID:     id,
		Title:  "Catch " + id,
		LureID: lureID,
		Status: content.StatusPublished,
		Images: []content.Image{{Src: "/" + id + ".jpg"}, {Src: "/" + id + "-2.jpg"}},
	}
}

func entryIDs(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestBuildEntries(t *testing.T) {
	store := testStore(t)
	catches := []content.Catch{
		catchRecord("c1", "lure-spin"),
		catchRecord("c2", "lure-ghost"), // dangling
		catchRecord("c3", ""),
	}

	entries := BuildEntries(catches, store)
	require.Len(t, entries, 3)

	require.NotNil(t, entries[0].Product)
	assert.Equal(t, "River Spin", entries[0].Product.Name)
	assert.Equal(t, "spinnerbait", entries[0].Category)

	assert.Nil(t, entries[1].Product, "a dangling reference yields an absent product without error")
	assert.Empty(t, entries[1].Category)
	assert.Nil(t, entries[2].Product)
}

func TestBuildEntries_DropsUndisplayable(t *testing.T) {
	store := testStore(t)

	draft := catchRecord("c-draft", "")
	draft.Status = content.StatusDraft
	imageless := catchRecord("c-noimg", "")
	imageless.Images = nil

	entries := BuildEntries([]content.Catch{draft, imageless, catchRecord("c-ok", "")}, store)
	assert.Equal(t, []string{"c-ok"}, entryIDs(entries))
}

func TestApply(t *testing.T) {
	store := testStore(t)
	spin := catchRecord("c-spin", "lure-spin")
	spin.Angler = "Jordan"
	spin.Species = "largemouth"
	jig := catchRecord("c-jig", "lure-jig")
	jig.Tags = []string{"night"}
	entries := BuildEntries([]content.Catch{spin, jig}, store)

	t.Run("lure filter", func(t *testing.T) {
		filtered := Apply(entries, Filter{LureID: "lure-jig"})
		assert.Equal(t, []string{"c-jig"}, entryIDs(filtered))
	})

	t.Run("category filter via cross-reference", func(t *testing.T) {
		filtered := Apply(entries, Filter{Category: "spinnerbait"})
		assert.Equal(t, []string{"c-spin"}, entryIDs(filtered))
	})

	t.Run("query over angler", func(t *testing.T) {
		filtered := Apply(entries, Filter{Query: "jordan"})
		assert.Equal(t, []string{"c-spin"}, entryIDs(filtered))
	})

	t.Run("query over resolved product name", func(t *testing.T) {
		filtered := Apply(entries, Filter{Query: "creek"})
		assert.Equal(t, []string{"c-jig"}, entryIDs(filtered))
	})

	t.Run("query over tags", func(t *testing.T) {
		filtered := Apply(entries, Filter{Query: "night"})
		assert.Equal(t, []string{"c-jig"}, entryIDs(filtered))
	})

	t.Run("preserves input order", func(t *testing.T) {
		filtered := Apply(entries, Filter{})
		assert.Equal(t, []string{"c-spin", "c-jig"}, entryIDs(filtered))
	})
}
