package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest records a marketplace order and fulfills it from stock.
type CreateOrderRequest struct {
	OrderID  string          `json:"order_id" validate:"required"`
	Platform string          `json:"platform"`
	SKU      string          `json:"sku" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse is the outward projection of an order.
type OrderResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Platform  string          `json:"platform"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	OrderDate time.Time       `json:"order_date"`
}
