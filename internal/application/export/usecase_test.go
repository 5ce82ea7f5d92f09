package export_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/moonhub/inventory-hub/internal/application/export"
	"github.com/moonhub/inventory-hub/internal/application/report"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

type fakeReportRepo struct{}

func (fakeReportRepo) InventoryReport(context.Context) ([]repository.InventoryReportRow, error) {
	return []repository.InventoryReportRow{
		{
			SKU: "SKU001", Name: "Widget", Category: "Electronics",
			CurrentStock: 40, MinStockLevel: 10,
			CostPrice: decimal.NewFromInt(500), SellingPrice: decimal.NewFromInt(1200),
			PlatformCount: 2, Platforms: "amazon, flipkart",
		},
	}, nil
}

func (fakeReportRepo) LowStockAlerts(context.Context) ([]repository.LowStockRow, error) {
	return []repository.LowStockRow{
		{SKU: "SKU002", Name: "Gadget", CurrentStock: 3, MinStockLevel: 10},
	}, nil
}

func TestExportInventory_WritesWorkbook(t *testing.T) {
	aggregator := report.NewAggregatorUseCase(fakeReportRepo{}, nil)
	uc := export.NewExportUseCase(aggregator, t.TempDir())

	path, err := uc.ExportInventory(context.Background())
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "inventory_export_"), name)
	assert.True(t, strings.HasSuffix(name, ".xlsx"), name)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Inventory", "Low Stock Alerts"}, f.GetSheetList())

	sku, err := f.GetCellValue("Inventory", "A2")
	require.NoError(t, err)
	assert.Equal(t, "SKU001", sku)

	platforms, err := f.GetCellValue("Inventory", "H2")
	require.NoError(t, err)
	assert.Equal(t, "amazon, flipkart", platforms)

	shortage, err := f.GetCellValue("Low Stock Alerts", "E2")
	require.NoError(t, err)
	assert.Equal(t, "7", shortage)
}
