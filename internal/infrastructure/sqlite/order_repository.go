package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port on sqlite.
type OrderRepo struct {
	q sqlx.ExtContext
}

// NewOrderRepository builds the adapter. Pass *sqlx.DB or *sqlx.Tx.
func NewOrderRepository(q sqlx.ExtContext) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a marketplace order. A duplicate marketplace order_id maps
// to domain.ErrDuplicateOrder.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_id, platform, product_id, quantity, price, status, order_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		o.ID, o.OrderID, o.Platform, o.ProductID, o.Quantity, o.Price, o.Status, o.OrderDate, o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// List returns orders, newest first.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, order_id, platform, product_id, quantity, price, status, order_date, created_at
		FROM orders ORDER BY created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.q.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderID, &o.Platform, &o.ProductID, &o.Quantity, &o.Price, &o.Status, &o.OrderDate, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// DeleteByProduct removes all orders of a product (cascade delete).
func (r *OrderRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM orders WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}
	return nil
}
