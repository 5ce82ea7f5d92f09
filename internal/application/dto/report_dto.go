package dto

import "github.com/shopspring/decimal"

// LowStockAlertDTO is one product at or below its minimum threshold.
type LowStockAlertDTO struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	CurrentStock  int    `json:"current_stock"`
	MinStockLevel int    `json:"min_stock_level"`
}

// InventoryReportRowDTO is one row of the inventory report with joined
// marketplace listings.
type InventoryReportRowDTO struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	PlatformCount int             `json:"platform_count"`
	Platforms     string          `json:"platforms"`
}

// DashboardStatsDTO is the derived dashboard summary. Never persisted.
type DashboardStatsDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	AvgProfitMargin decimal.Decimal `json:"avg_profit_margin"`
}

// ValuationRowDTO is one row of the inventory valuation report.
type ValuationRowDTO struct {
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
	PotentialProfit  decimal.Decimal `json:"potential_profit"`
}

// StockChartDTO feeds the dashboard bar chart (first N SKUs).
type StockChartDTO struct {
	Labels       []string `json:"labels"`
	CurrentStock []int    `json:"current_stock"`
	MinStock     []int    `json:"min_stock"`
}
