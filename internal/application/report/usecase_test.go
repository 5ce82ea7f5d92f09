package report_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonhub/inventory-hub/internal/application/report"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

type fakeReportRepo struct {
	rows     []repository.InventoryReportRow
	lowStock []repository.LowStockRow
	calls    int
}

func (f *fakeReportRepo) InventoryReport(context.Context) ([]repository.InventoryReportRow, error) {
	f.calls++
	return f.rows, nil
}

func (f *fakeReportRepo) LowStockAlerts(context.Context) ([]repository.LowStockRow, error) {
	return f.lowStock, nil
}

type fakeCache struct {
	data map[string][]byte
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := f.data[key]
	return raw, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func row(sku string, stock, minLevel int, cost, sell int64) repository.InventoryReportRow {
	return repository.InventoryReportRow{
		SKU: sku, Name: "Product " + sku, CurrentStock: stock, MinStockLevel: minLevel,
		CostPrice: dec(cost), SellingPrice: dec(sell),
	}
}

func TestLowStockAlerts(t *testing.T) {
	repo := &fakeReportRepo{lowStock: []repository.LowStockRow{
		{SKU: "SKU001", Name: "Widget", CurrentStock: 5, MinStockLevel: 10},
		{SKU: "SKU002", Name: "Gadget", CurrentStock: 10, MinStockLevel: 10},
	}}
	uc := report.NewAggregatorUseCase(repo, nil)

	out, err := uc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "SKU001", out[0].SKU)
	assert.Equal(t, 10, out[1].CurrentStock, "boundary product stays in the alert set")
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeReportRepo{
		rows: []repository.InventoryReportRow{
			row("SKU001", 50, 10, 500, 1200),
			row("SKU002", 0, 10, 50, 200),
		},
		lowStock: []repository.LowStockRow{{SKU: "SKU002"}},
	}
	uc := report.NewAggregatorUseCase(repo, nil)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.OutOfStockCount)
	// 500*50 + 50*0
	assert.True(t, stats.TotalStockValue.Equal(dec(25000)), "got %s", stats.TotalStockValue)
	// mean of 58.3333 and 75, rounded to 2
	assert.Equal(t, "66.67", stats.AvgProfitMargin.StringFixed(2))
}

func TestDashboardStats_Empty(t *testing.T) {
	uc := report.NewAggregatorUseCase(&fakeReportRepo{}, nil)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalStockValue.IsZero())
	assert.True(t, stats.AvgProfitMargin.IsZero(), "margin is defined as 0 with no sellable products")
}

func TestDashboardStats_ZeroSellingPriceSkipsMargin(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.InventoryReportRow{
		row("SKU001", 5, 10, 100, 0),
		row("SKU002", 5, 10, 100, 400),
	}}
	uc := report.NewAggregatorUseCase(repo, nil)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "75.00", stats.AvgProfitMargin.StringFixed(2), "zero-price product excluded from the mean")
}

func TestDashboardStats_CacheHitSkipsStore(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.InventoryReportRow{row("SKU001", 5, 10, 100, 200)}}
	cache := &fakeCache{data: map[string][]byte{}}
	uc := report.NewAggregatorUseCase(repo, cache)

	first, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	callsAfterFirst := repo.calls

	second, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, repo.calls, "second call must come from the cache")
	raw, _ := json.Marshal(first)
	got, _ := json.Marshal(second)
	assert.JSONEq(t, string(raw), string(got))
}

func TestValuation(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.InventoryReportRow{row("SKU001", 40, 10, 500, 1200)}}
	uc := report.NewAggregatorUseCase(repo, nil)

	out, err := uc.Valuation(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	v := out[0]
	assert.True(t, v.TotalCost.Equal(dec(20000)))
	assert.True(t, v.PotentialRevenue.Equal(dec(48000)))
	assert.True(t, v.PotentialProfit.Equal(dec(28000)))
}

func TestStockChart_LimitsToTenRows(t *testing.T) {
	repo := &fakeReportRepo{}
	for i := 0; i < 14; i++ {
		repo.rows = append(repo.rows, row(fmt.Sprintf("SKU%03d", i), i, 10, 10, 20))
	}
	uc := report.NewAggregatorUseCase(repo, nil)

	chart, err := uc.StockChart(context.Background())
	require.NoError(t, err)
	assert.Len(t, chart.Labels, 10)
	assert.Len(t, chart.CurrentStock, 10)
	assert.Len(t, chart.MinStock, 10)
	assert.Equal(t, "SKU000", chart.Labels[0])
}
