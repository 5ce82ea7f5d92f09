package dto

import "time"

// UpdateStockRequest records one stock movement against a SKU.
type UpdateStockRequest struct {
	SKU          string `json:"sku" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	MovementType string `json:"movement_type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Platform     string `json:"platform"`
	OrderID      string `json:"order_id"`
	Notes        string `json:"notes"`
}

// MovementResponse is one ledger entry.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"movement_type"`
	Quantity  int       `json:"quantity"`
	Platform  string    `json:"platform,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockUpdateResponse reports the balance after a successful movement.
type StockUpdateResponse struct {
	SKU          string `json:"sku"`
	MovementType string `json:"movement_type"`
	Quantity     int    `json:"quantity"`
	NewStock     int    `json:"new_stock"`
}
