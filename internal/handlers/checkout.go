package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/riplures/internal/cart"
	"github.com/example/riplures/internal/models"
	"github.com/example/riplures/internal/services"
)

// CheckoutHandler hands the cart off to the payment collaborator: it records
// the order and returns the line-item payload the processor consumes. The
// payment session itself is created outside this service.
type CheckoutHandler struct {
	db       *gorm.DB
	carts    *cart.Store
	telegram *services.TelegramService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, carts *cart.Store, telegram *services.TelegramService) *CheckoutHandler {
	return &CheckoutHandler{db: db, carts: carts, telegram: telegram}
}

type lineItem struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Checkout reads the cart read-only and records a pending order.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	id := cartID(c)
	ct, err := h.carts.Load(c.Context(), id)
	if err != nil {
		return err
	}
	if len(ct.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no items")
	}

	order := models.Order{
		OrderNumber: fmt.Sprintf("RIP-%d", time.Now().UnixMilli()),
		CartID:      id,
		Status:      "pending",
		PlacedAt:    time.Now(),
		Currency:    "USD",
	}

	items := make([]lineItem, 0, len(ct.Items))
	for _, item := range ct.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			ProductName:   item.Name,
			VariantLabel:  item.Label,
			StripePriceID: item.StripePriceID,
			Quantity:      item.Qty,
		})
		items = append(items, lineItem{Price: item.StripePriceID, Quantity: item.Qty})
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	notification := services.OrderNotification{OrderNumber: order.OrderNumber}
	for _, item := range ct.Items {
		notification.Items = append(notification.Items, services.OrderItemNotification{
			ProductName:  item.Name,
			VariantLabel: item.Label,
			Quantity:     item.Qty,
		})
	}
	if err := h.telegram.NotifyNewOrder(notification); err != nil {
		log.Printf("[checkout] telegram notification failed: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"order_number": order.OrderNumber,
		"line_items":   items,
	})
}

type successRequest struct {
	OrderNumber string `json:"order_number"`
}

// Success is the success-page landing: it clears the cart exactly once per
// order, guarded by a one-shot flag rather than re-reading persisted state.
func (h *CheckoutHandler) Success(c *fiber.Ctx) error {
	var req successRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.OrderNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_number required")
	}

	first, err := h.carts.MarkCleared(c.Context(), req.OrderNumber)
	if err != nil {
		return err
	}

	if first {
		id := cartID(c)
		if err := h.carts.Save(c.Context(), id, &cart.Cart{}); err != nil {
			return err
		}
		if err := h.db.Model(&models.Order{}).
			Where("order_number = ?", req.OrderNumber).
			Update("status", "completed").Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "cleared": first})
}
