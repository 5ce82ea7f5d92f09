package repository

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
)

// ProductRepository is the persistence port for products.
// Get methods return (nil, nil) when no row matches.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetBySKUForUpdate locks the product row for the duration of the enclosing
	// transaction so the balance-check-then-write sequence is serialized.
	GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error)
	UpdateStock(ctx context.Context, productID string, newStock int) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, productID string) error
}
