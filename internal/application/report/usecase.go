// Package report derives low-stock alerts, valuation figures and dashboard
// statistics from the store. Stateless: a pure function of store contents,
// never a mutation.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second

	stockChartLimit = 10
)

var oneHundred = decimal.NewFromInt(100)

// AggregatorUseCase answers all read-only report queries.
type AggregatorUseCase struct {
	reports repository.ReportRepository
	cache   StatsCache
}

// NewAggregatorUseCase builds the aggregator. cache may be nil.
func NewAggregatorUseCase(reports repository.ReportRepository, cache StatsCache) *AggregatorUseCase {
	return &AggregatorUseCase{reports: reports, cache: cache}
}

// LowStockAlerts returns every product with current_stock <= min_stock_level.
// The boundary is inclusive.
func (uc *AggregatorUseCase) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	rows, err := uc.reports.LowStockAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("low stock alerts: %w", err)
	}
	out := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockAlertDTO{
			SKU:           r.SKU,
			Name:          r.Name,
			CurrentStock:  r.CurrentStock,
			MinStockLevel: r.MinStockLevel,
		})
	}
	return out, nil
}

// InventoryReport returns the per-product report with marketplace listings
// joined in. Products without listings appear with PlatformCount 0.
func (uc *AggregatorUseCase) InventoryReport(ctx context.Context) ([]dto.InventoryReportRowDTO, error) {
	rows, err := uc.reports.InventoryReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	out := make([]dto.InventoryReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryReportRowDTO{
			SKU:           r.SKU,
			Name:          r.Name,
			Category:      r.Category,
			CurrentStock:  r.CurrentStock,
			MinStockLevel: r.MinStockLevel,
			CostPrice:     r.CostPrice,
			SellingPrice:  r.SellingPrice,
			PlatformCount: r.PlatformCount,
			Platforms:     r.Platforms,
		})
	}
	return out, nil
}

// DashboardStats computes the dashboard summary from the report and the
// low-stock set. Money is rounded to 2 decimals; the average profit margin is
// the mean of (selling-cost)/selling*100 over products with selling_price > 0
// and defined as 0 when that set is empty. Results are cached briefly when a
// cache is configured.
func (uc *AggregatorUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.cache != nil {
		if raw, ok, err := uc.cache.Get(ctx, statsCacheKey); err != nil {
			log.Warn().Err(err).Msg("stats cache read failed")
		} else if ok {
			var cached dto.DashboardStatsDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	rows, err := uc.reports.InventoryReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	alerts, err := uc.reports.LowStockAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := computeStats(rows, len(alerts))

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := uc.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL); err != nil {
				log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}

func computeStats(rows []repository.InventoryReportRow, lowStockCount int) *dto.DashboardStatsDTO {
	totalValue := decimal.Zero
	marginSum := decimal.Zero
	marginCount := 0
	outOfStock := 0

	for _, r := range rows {
		totalValue = totalValue.Add(r.CostPrice.Mul(decimal.NewFromInt(int64(r.CurrentStock))))
		if r.CurrentStock == 0 {
			outOfStock++
		}
		if r.SellingPrice.IsPositive() {
			margin := r.SellingPrice.Sub(r.CostPrice).Div(r.SellingPrice).Mul(oneHundred)
			marginSum = marginSum.Add(margin)
			marginCount++
		}
	}

	avgMargin := decimal.Zero
	if marginCount > 0 {
		avgMargin = marginSum.Div(decimal.NewFromInt(int64(marginCount)))
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   len(rows),
		TotalStockValue: totalValue.Round(2),
		LowStockCount:   lowStockCount,
		OutOfStockCount: outOfStock,
		AvgProfitMargin: avgMargin.Round(2),
	}
}

// Valuation returns the monetary worth of on-hand stock per product.
func (uc *AggregatorUseCase) Valuation(ctx context.Context) ([]dto.ValuationRowDTO, error) {
	rows, err := uc.reports.InventoryReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("valuation report: %w", err)
	}
	out := make([]dto.ValuationRowDTO, 0, len(rows))
	for _, r := range rows {
		qty := decimal.NewFromInt(int64(r.CurrentStock))
		out = append(out, dto.ValuationRowDTO{
			SKU:              r.SKU,
			Name:             r.Name,
			Category:         r.Category,
			Quantity:         r.CurrentStock,
			CostPerUnit:      r.CostPrice,
			TotalCost:        qty.Mul(r.CostPrice),
			SellingPrice:     r.SellingPrice,
			PotentialRevenue: qty.Mul(r.SellingPrice),
			PotentialProfit:  qty.Mul(r.SellingPrice.Sub(r.CostPrice)),
		})
	}
	return out, nil
}

// StockChart returns chart arrays for the first 10 report rows.
func (uc *AggregatorUseCase) StockChart(ctx context.Context) (*dto.StockChartDTO, error) {
	rows, err := uc.reports.InventoryReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock chart: %w", err)
	}
	if len(rows) > stockChartLimit {
		rows = rows[:stockChartLimit]
	}
	chart := &dto.StockChartDTO{
		Labels:       make([]string, 0, len(rows)),
		CurrentStock: make([]int, 0, len(rows)),
		MinStock:     make([]int, 0, len(rows)),
	}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, r.SKU)
		chart.CurrentStock = append(chart.CurrentStock, r.CurrentStock)
		chart.MinStock = append(chart.MinStock, r.MinStockLevel)
	}
	return chart, nil
}
