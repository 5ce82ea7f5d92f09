// Package sqlite is the embedded storage backend, built on sqlx over the pure
// Go sqlite driver. Suited to single-node deployments without a database
// server; the postgres backend covers everything else.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
	"github.com/moonhub/inventory-hub/pkg/config"
)

// Store bundles the sqlite repositories and transaction runner.
type Store struct {
	db *sqlx.DB
}

// NewStore opens the database file, sets the pragmas and applies migrations.
func NewStore(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One writer at a time keeps transactions serialized without FOR UPDATE.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		`PRAGMA foreign_keys = ON`,
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Products() repository.ProductRepository {
	return NewProductRepository(s.db)
}

func (s *Store) Movements() repository.StockMovementRepository {
	return NewStockMovementRepository(s.db)
}

func (s *Store) Listings() repository.PlatformListingRepository {
	return NewPlatformListingRepository(s.db)
}

func (s *Store) Orders() repository.OrderRepository {
	return NewOrderRepository(s.db)
}

func (s *Store) Reports() repository.ReportRepository {
	return NewReportRepository(s.db)
}

func (s *Store) TxRunner() inventory.TxRunner {
	return NewTxRunner(s.db)
}

// Ping checks the connection, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database file.
func (s *Store) Close() {
	_ = s.db.Close()
}
