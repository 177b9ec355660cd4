package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/riplures/internal/cart"
)

const cartCookie = "cart_id"

// CartHandler manages the persisted per-session cart.
type CartHandler struct {
	store *cart.Store
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// cartID reads the session cart id cookie, minting one when absent.
func cartID(c *fiber.Ctx) string {
	if id := c.Cookies(cartCookie); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     cartCookie,
		Value:    id,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

// GetCart returns the current item list.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	ct, err := h.store.Load(c.Context(), cartID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ct.Items})
}

type addItemRequest struct {
	ProductID     string `json:"productId"`
	VariantID     string `json:"variantId"`
	Name          string `json:"name"`
	Label         string `json:"label"`
	StripePriceID string `json:"stripePriceId"`
	Qty           int    `json:"qty"`
}

// AddItem merges an item into the cart; same (productId, variantId)
// accumulates quantity.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	id := cartID(c)
	ct, err := h.store.Load(c.Context(), id)
	if err != nil {
		return err
	}

	if err := ct.Add(cart.Item{
		ProductID:     req.ProductID,
		VariantID:     req.VariantID,
		Name:          req.Name,
		Label:         req.Label,
		StripePriceID: req.StripePriceID,
		Qty:           req.Qty,
	}); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.store.Save(c.Context(), id, ct); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ct.Items})
}

type setQtyRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Qty       int    `json:"qty"`
}

// SetQty replaces a row's quantity, clamped into [1, 99].
func (h *CartHandler) SetQty(c *fiber.Ctx) error {
	var req setQtyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	id := cartID(c)
	ct, err := h.store.Load(c.Context(), id)
	if err != nil {
		return err
	}

	ct.SetQty(req.ProductID, req.VariantID, req.Qty)

	if err := h.store.Save(c.Context(), id, ct); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ct.Items})
}

// RemoveItem deletes one row; absence is a no-op, not an error.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id := cartID(c)
	ct, err := h.store.Load(c.Context(), id)
	if err != nil {
		return err
	}

	ct.Remove(c.Params("productId"), c.Params("variantId"))

	if err := h.store.Save(c.Context(), id, ct); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ct.Items})
}

// ClearCart empties all rows.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	id := cartID(c)
	ct, err := h.store.Load(c.Context(), id)
	if err != nil {
		return err
	}

	ct.Clear()

	if err := h.store.Save(c.Context(), id, ct); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ct.Items})
}
