package repository

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
)

// StockMovementRepository is the persistence port for the movement ledger.
// The ledger is append-only: no update, no single-row delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
