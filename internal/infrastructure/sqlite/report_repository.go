package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements the read-only report queries on sqlite.
type ReportRepo struct {
	q sqlx.ExtContext
}

// NewReportRepository builds the adapter. Pass *sqlx.DB or *sqlx.Tx.
func NewReportRepository(q sqlx.ExtContext) *ReportRepo {
	return &ReportRepo{q: q}
}

// InventoryReport joins products with their marketplace listings. GROUP_CONCAT
// is sqlite's STRING_AGG.
func (r *ReportRepo) InventoryReport(ctx context.Context) ([]repository.InventoryReportRow, error) {
	query := `
		SELECT p.sku, p.name, p.category, p.current_stock, p.min_stock_level,
			p.cost_price, p.selling_price,
			COUNT(pl.id) AS platform_count,
			COALESCE(GROUP_CONCAT(pl.platform, ', '), '') AS platforms
		FROM products p
		LEFT JOIN platform_listings pl ON pl.product_id = p.id
		GROUP BY p.id
		ORDER BY p.sku`
	rows, err := r.q.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryReportRow
	for rows.Next() {
		var row repository.InventoryReportRow
		if err := rows.Scan(&row.SKU, &row.Name, &row.Category, &row.CurrentStock, &row.MinStockLevel,
			&row.CostPrice, &row.SellingPrice, &row.PlatformCount, &row.Platforms); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowStockAlerts returns products at or below their minimum stock level.
func (r *ReportRepo) LowStockAlerts(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT sku, name, current_stock, min_stock_level
		FROM products
		WHERE current_stock <= min_stock_level
		ORDER BY current_stock ASC`
	rows, err := r.q.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock alerts: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.SKU, &row.Name, &row.CurrentStock, &row.MinStockLevel); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
