package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(pid, vid string, qty int) Item {
	return Item{
		ProductID:     pid,
		VariantID:     vid,
		Name:          "Lure " + pid,
		Label:         "Variant " + vid,
		StripePriceID: "price_" + pid + vid,
		Qty:           qty,
	}
}

func TestCart_AddMerges(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 3)))
	require.NoError(t, c.Add(item("p1", "v1", 5)))

	require.Len(t, c.Items, 1, "same (productId, variantId) accumulates, no duplicate rows")
	assert.Equal(t, 8, c.Items[0].Qty)
}

func TestCart_AddMergeClampsAtMax(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 60)))
	require.NoError(t, c.Add(item("p1", "v1", 60)))

	assert.Equal(t, MaxQty, c.Items[0].Qty)
}

func TestCart_AddPreservesInsertionOrder(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 1)))
	require.NoError(t, c.Add(item("p2", "v1", 1)))
	require.NoError(t, c.Add(item("p1", "v2", 1)))
	require.NoError(t, c.Add(item("p1", "v1", 1))) // merge, stays in place

	require.Len(t, c.Items, 3)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, "v1", c.Items[0].VariantID)
	assert.Equal(t, "p2", c.Items[1].ProductID)
	assert.Equal(t, "v2", c.Items[2].VariantID)
}

func TestCart_AddRejectsMissingIdentity(t *testing.T) {
	var c Cart
	assert.ErrorIs(t, c.Add(item("", "v1", 1)), ErrInvalidItem)
	assert.ErrorIs(t, c.Add(item("p1", "", 1)), ErrInvalidItem)
	assert.Empty(t, c.Items)
}

func TestCart_SetQtyClamps(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 3)))

	c.SetQty("p1", "v1", 500)
	assert.Equal(t, 99, c.Items[0].Qty)

	c.SetQty("p1", "v1", -5)
	assert.Equal(t, 1, c.Items[0].Qty)

	c.SetQty("p1", "v1", 42)
	assert.Equal(t, 42, c.Items[0].Qty)
}

func TestCart_SetQtyMissingRowIsNoop(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 3)))

	c.SetQty("p9", "v9", 10)
	assert.Equal(t, 3, c.Items[0].Qty)
}

func TestCart_Remove(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 1)))
	require.NoError(t, c.Add(item("p2", "v1", 1)))

	c.Remove("p1", "v1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)

	c.Remove("p1", "v1") // absent: no-op, not an error
	assert.Len(t, c.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("p1", "v1", 1)))
	require.NoError(t, c.Add(item("p2", "v1", 1)))

	c.Clear()
	assert.Empty(t, c.Items)
}
