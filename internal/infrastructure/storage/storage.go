// Package storage defines the backend contract both engines satisfy. The
// backend is picked once at startup from configuration and injected into the
// use cases; nothing downstream knows which engine is running.
package storage

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

// Store exposes the repositories and the transaction runner of a backend.
type Store interface {
	Products() repository.ProductRepository
	Movements() repository.StockMovementRepository
	Listings() repository.PlatformListingRepository
	Orders() repository.OrderRepository
	Reports() repository.ReportRepository
	TxRunner() inventory.TxRunner
	Ping(ctx context.Context) error
	Close()
}
