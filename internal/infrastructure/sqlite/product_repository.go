package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category, cost_price, selling_price, current_stock, min_stock_level, max_stock_level, created_at, updated_at`

// ProductRepo implements the ProductRepository port on sqlite (db or tx).
type ProductRepo struct {
	q sqlx.ExtContext
}

// NewProductRepository builds the adapter. Pass *sqlx.DB or *sqlx.Tx.
func NewProductRepository(q sqlx.ExtContext) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. A duplicate SKU maps to domain.ErrDuplicateSKU.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, category, cost_price, selling_price, current_stock, min_stock_level, max_stock_level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		product.ID, product.SKU, product.Name, product.Category,
		product.CostPrice, product.SellingPrice, product.CurrentStock,
		product.MinStockLevel, product.MaxStockLevel, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU fetches a product by SKU. Returns (nil, nil) when absent.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = ?`
	var p entity.Product
	err := r.q.QueryRowxContext(ctx, query, sku).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.CostPrice, &p.SellingPrice,
		&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// GetBySKUForUpdate is a plain select: the store runs a single writer, so a
// transaction already serializes concurrent balance updates.
func (r *ProductRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return r.GetBySKU(ctx, sku)
}

// UpdateStock sets the stock balance of a product.
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, newStock int) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE products SET current_stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newStock, productID,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List returns all products ordered by name.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.CostPrice, &p.SellingPrice,
			&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
