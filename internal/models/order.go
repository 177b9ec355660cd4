package models

import (
	"time"

	"github.com/google/uuid"
)

// Order records one checkout handoff. Product ids are content-record
// strings, not foreign keys — the catalog lives in the built JSON artifact,
// not in Postgres.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"uniqueIndex" json:"order_number"`
	CartID      string      `gorm:"index" json:"cart_id"`
	Status      string      `json:"status"`
	PlacedAt    time.Time   `json:"placed_at"`
	Currency    string      `json:"currency"`
	Notes       string      `json:"notes"`
	Items       []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID       uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID     string `json:"product_id"`
	VariantID     string `json:"variant_id"`
	ProductName   string `json:"product_name"`
	VariantLabel  string `json:"variant_label"`
	SKU           string `json:"sku"`
	StripePriceID string `json:"stripe_price_id"`
	Quantity      int    `json:"quantity"`
}
