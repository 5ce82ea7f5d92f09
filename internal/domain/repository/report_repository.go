package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventoryReportRow is one per-product row of the inventory report, augmented
// with the marketplace listings joined in (left outer join semantics: products
// with zero listings still appear with PlatformCount 0).
type InventoryReportRow struct {
	SKU           string
	Name          string
	Category      string
	CurrentStock  int
	MinStockLevel int
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	PlatformCount int
	Platforms     string // comma-joined platform names, empty when none
}

// LowStockRow is one product at or below its minimum stock threshold.
type LowStockRow struct {
	SKU           string
	Name          string
	CurrentStock  int
	MinStockLevel int
}

// ReportRepository is the read-only port the aggregator queries. It never
// mutates the store.
type ReportRepository interface {
	InventoryReport(ctx context.Context) ([]InventoryReportRow, error)
	LowStockAlerts(ctx context.Context) ([]LowStockRow, error)
}
