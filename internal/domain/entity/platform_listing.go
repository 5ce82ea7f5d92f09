package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformListing associates a product with a marketplace listing. Informational
// only: allocated stock here is never consulted by the ledger invariants.
type PlatformListing struct {
	ID             string
	ProductID      string
	Platform       string
	PlatformSKU    string
	PlatformPrice  decimal.Decimal
	StockAllocated int
	IsActive       bool
	LastSync       *time.Time
}
