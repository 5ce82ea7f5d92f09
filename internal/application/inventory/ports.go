package inventory

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction, passing repositories
// bound to that transaction. Both writes of a movement (balance update and
// ledger insert) commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		listings repository.PlatformListingRepository,
		orders repository.OrderRepository,
	) error) error
}
