package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformStatusDTO reports one marketplace connection.
type PlatformStatusDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"` // connected | disconnected
}

// ConnectPlatformRequest stores marketplace API credentials.
type ConnectPlatformRequest struct {
	Credentials map[string]string `json:"credentials" validate:"required"`
}

// CreateListingRequest attaches a marketplace listing to a product.
type CreateListingRequest struct {
	Platform       string          `json:"platform" validate:"required"`
	PlatformSKU    string          `json:"platform_sku"`
	PlatformPrice  decimal.Decimal `json:"platform_price"`
	StockAllocated int             `json:"stock_allocated"`
}

// ListingResponse is the outward projection of a listing.
type ListingResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Platform       string          `json:"platform"`
	PlatformSKU    string          `json:"platform_sku"`
	PlatformPrice  decimal.Decimal `json:"platform_price"`
	StockAllocated int             `json:"stock_allocated"`
	IsActive       bool            `json:"is_active"`
	LastSync       *time.Time      `json:"last_sync,omitempty"`
}
