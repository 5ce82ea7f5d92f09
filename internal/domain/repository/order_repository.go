package repository

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
)

// OrderRepository is the persistence port for marketplace orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
