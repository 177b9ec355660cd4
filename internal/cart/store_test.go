package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(t *testing.T, bodies ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(bodies))
	for i, b := range bodies {
		require.True(t, json.Valid([]byte(b)), "fixture %d must be valid JSON", i)
		out[i] = json.RawMessage(b)
	}
	return out
}

func TestMigrate_ValidRows(t *testing.T) {
	items := Migrate(StorageVersion, rows(t,
		`{"productId":"p1","variantId":"v1","name":"A","label":"Std","stripePriceId":"price_1","qty":2}`,
		`{"productId":"p2","variantId":"v1","name":"B","label":"Std","stripePriceId":"price_2","qty":1}`,
	))

	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Qty)
}

func TestMigrate_DropsInvalidRows(t *testing.T) {
	items := Migrate(1, rows(t,
		`{"productId":"p1","variantId":"v1","qty":2}`,
		`{"variantId":"v1","qty":2}`,
		`{"productId":"p2","qty":2}`,
		`"just a string"`,
		`{"productId":"p3","variantId":"v1","qty":3}`,
	))

	require.Len(t, items, 2, "invalid stored rows are dropped silently")
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p3", items[1].ProductID)
}

func TestMigrate_ClampsQuantities(t *testing.T) {
	items := Migrate(StorageVersion, rows(t,
		`{"productId":"p1","variantId":"v1","qty":1000}`,
		`{"productId":"p2","variantId":"v1","qty":0}`,
		`{"productId":"p3","variantId":"v1","qty":-3}`,
	))

	require.Len(t, items, 3)
	assert.Equal(t, MaxQty, items[0].Qty)
	assert.Equal(t, MinQty, items[1].Qty)
	assert.Equal(t, MinQty, items[2].Qty)
}

func TestMigrate_DeduplicatesKeys(t *testing.T) {
	items := Migrate(StorageVersion, rows(t,
		`{"productId":"p1","variantId":"v1","qty":2}`,
		`{"productId":"p1","variantId":"v1","qty":9}`,
	))

	require.Len(t, items, 1, "the (productId, variantId) key set stays unique")
	assert.Equal(t, 2, items[0].Qty, "the first stored row wins")
}

func TestMigrate_EmptyAndNil(t *testing.T) {
	assert.Empty(t, Migrate(StorageVersion, nil))
	assert.Empty(t, Migrate(0, []json.RawMessage{}))
}
