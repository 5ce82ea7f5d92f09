package postgres

import (
	"context"
	"fmt"

	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port on PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a marketplace order. A duplicate marketplace order_id maps
// to domain.ErrDuplicateOrder.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_id, platform, product_id, quantity, price, status, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
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
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
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
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}
	return nil
}
