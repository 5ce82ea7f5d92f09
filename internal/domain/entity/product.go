package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable SKU. CurrentStock is the ledger balance and is mutated
// exclusively through stock movements; never written directly by callers.
type Product struct {
	ID            string
	SKU           string // unique business key, immutable
	Name          string
	Category      string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Defaults applied when a product is created without explicit thresholds.
const (
	DefaultMinStockLevel = 10
	DefaultMaxStockLevel = 100
)
