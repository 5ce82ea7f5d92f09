// Package postgres is the PostgreSQL storage backend, built on pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
	"github.com/moonhub/inventory-hub/pkg/config"
)

// Store bundles the PostgreSQL repositories and transaction runner behind the
// storage interface selected at startup.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects the pool and applies migrations.
func NewStore(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Products() repository.ProductRepository {
	return NewProductRepository(s.pool)
}

func (s *Store) Movements() repository.StockMovementRepository {
	return NewStockMovementRepository(s.pool)
}

func (s *Store) Listings() repository.PlatformListingRepository {
	return NewPlatformListingRepository(s.pool)
}

func (s *Store) Orders() repository.OrderRepository {
	return NewOrderRepository(s.pool)
}

func (s *Store) Reports() repository.ReportRepository {
	return NewReportRepository(s.pool)
}

func (s *Store) TxRunner() inventory.TxRunner {
	return NewTxRunner(s.pool)
}

// Ping checks connectivity, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
