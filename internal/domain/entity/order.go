package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as recorded from marketplace feeds.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a marketplace order against a single product. Fulfilling an order
// records an OUT movement through the ledger, so orders can never drive stock
// negative.
type Order struct {
	ID        string
	OrderID   string // marketplace order reference, unique
	Platform  string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Status    string
	OrderDate time.Time
	CreatedAt time.Time
}
