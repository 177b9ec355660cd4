package cart

import "errors"

// Quantity bounds for a single line item.
const (
	MinQty = 1
	MaxQty = 99
)

// ErrInvalidItem rejects items missing their identity fields.
var ErrInvalidItem = errors.New("cart: item requires productId and variantId")

// Item is one cart row, unique per (ProductID, VariantID).
type Item struct {
	ProductID     string `json:"productId"`
	VariantID     string `json:"variantId"`
	Name          string `json:"name"`
	Label         string `json:"label"`
	StripePriceID string `json:"stripePriceId"`
	Qty           int    `json:"qty"`
}

// Cart holds the ordered set of line items for one browsing session.
type Cart struct {
	Items []Item `json:"items"`
}

func clampQty(n int) int {
	if n < MinQty {
		return MinQty
	}
	if n > MaxQty {
		return MaxQty
	}
	return n
}

func (c *Cart) find(productID, variantID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && item.VariantID == variantID {
			return i
		}
	}
	return -1
}

// Add merges the item into the cart. An existing row with the same
// (productId, variantId) accumulates quantity instead of duplicating;
// otherwise the item is appended, preserving insertion order.
func (c *Cart) Add(item Item) error {
	if item.ProductID == "" || item.VariantID == "" {
		return ErrInvalidItem
	}
	item.Qty = clampQty(item.Qty)

	if i := c.find(item.ProductID, item.VariantID); i >= 0 {
		existing := c.Items[i]
		item.Qty = clampQty(existing.Qty + item.Qty)
		c.Items[i] = item
		return nil
	}

	c.Items = append(c.Items, item)
	return nil
}

// Remove deletes the matching row; absence is a no-op.
func (c *Cart) Remove(productID, variantID string) {
	if i := c.find(productID, variantID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// SetQty replaces the row's quantity, clamped into [MinQty, MaxQty]; a
// missing row is a no-op.
func (c *Cart) SetQty(productID, variantID string, qty int) {
	if i := c.find(productID, variantID); i >= 0 {
		c.Items[i].Qty = clampQty(qty)
	}
}

// Clear empties all rows.
func (c *Cart) Clear() {
	c.Items = nil
}
