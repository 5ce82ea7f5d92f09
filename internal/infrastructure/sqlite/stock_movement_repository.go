package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the StockMovementRepository port on sqlite.
type StockMovementRepo struct {
	q sqlx.ExtContext
}

// NewStockMovementRepository builds the adapter. Pass *sqlx.DB or *sqlx.Tx.
func NewStockMovementRepository(q sqlx.ExtContext) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends a ledger entry.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, platform, order_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Platform, m.OrderID, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct returns movements of a product, newest first.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, platform, order_id, notes, created_at
		FROM stock_movements WHERE product_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.q.QueryxContext(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Platform, &m.OrderID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByProduct removes all movements of a product (cascade delete).
func (r *StockMovementRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM stock_movements WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}
