// Package export renders report output into a spreadsheet file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/moonhub/inventory-hub/internal/application/report"
	"github.com/moonhub/inventory-hub/internal/metrics"
)

const (
	inventorySheet = "Inventory"
	alertsSheet    = "Low Stock Alerts"

	headerFontColor = "FFFFFF"
	headerFillColor = "366092"
)

// ExportUseCase writes the inventory report and the low-stock alerts into an
// xlsx workbook in the OS temp dir.
type ExportUseCase struct {
	aggregator *report.AggregatorUseCase
	dir        string
}

// NewExportUseCase builds the exporter. dir defaults to os.TempDir when empty.
func NewExportUseCase(aggregator *report.AggregatorUseCase, dir string) *ExportUseCase {
	if dir == "" {
		dir = os.TempDir()
	}
	return &ExportUseCase{aggregator: aggregator, dir: dir}
}

// ExportInventory generates the workbook and returns the file path.
func (uc *ExportUseCase) ExportInventory(ctx context.Context) (string, error) {
	rows, err := uc.aggregator.InventoryReport(ctx)
	if err != nil {
		return "", err
	}
	alerts, err := uc.aggregator.LowStockAlerts(ctx)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return "", fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(alertsSheet); err != nil {
		return "", fmt.Errorf("export: create alerts sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return "", fmt.Errorf("export: header style: %w", err)
	}

	invHeaders := []interface{}{
		"SKU", "Name", "Category", "Current Stock", "Min Stock",
		"Cost Price", "Selling Price", "Platforms",
	}
	if err := f.SetSheetRow(inventorySheet, "A1", &invHeaders); err != nil {
		return "", fmt.Errorf("export: inventory headers: %w", err)
	}
	if err := f.SetCellStyle(inventorySheet, "A1", "H1", headerStyle); err != nil {
		return "", fmt.Errorf("export: inventory header style: %w", err)
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.SKU, r.Name, r.Category, r.CurrentStock, r.MinStockLevel,
			r.CostPrice.InexactFloat64(), r.SellingPrice.InexactFloat64(), r.Platforms,
		}
		if err := f.SetSheetRow(inventorySheet, cell, &row); err != nil {
			return "", fmt.Errorf("export: inventory row %d: %w", i+2, err)
		}
	}

	alertHeaders := []interface{}{"SKU", "Name", "Current Stock", "Min Stock", "Shortage"}
	if err := f.SetSheetRow(alertsSheet, "A1", &alertHeaders); err != nil {
		return "", fmt.Errorf("export: alert headers: %w", err)
	}
	if err := f.SetCellStyle(alertsSheet, "A1", "E1", headerStyle); err != nil {
		return "", fmt.Errorf("export: alert header style: %w", err)
	}
	for i, a := range alerts {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		shortage := a.MinStockLevel - a.CurrentStock
		if shortage < 0 {
			shortage = 0
		}
		row := []interface{}{a.SKU, a.Name, a.CurrentStock, a.MinStockLevel, shortage}
		if err := f.SetSheetRow(alertsSheet, cell, &row); err != nil {
			return "", fmt.Errorf("export: alert row %d: %w", i+2, err)
		}
	}

	name := fmt.Sprintf("inventory_export_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(uc.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("export: save workbook: %w", err)
	}

	metrics.ExportsTotal.Inc()
	return path, nil
}
