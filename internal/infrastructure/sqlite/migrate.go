package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		sku TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		cost_price TEXT NOT NULL DEFAULT '0',
		selling_price TEXT NOT NULL DEFAULT '0',
		current_stock INTEGER NOT NULL DEFAULT 0,
		min_stock_level INTEGER NOT NULL DEFAULT 10,
		max_stock_level INTEGER NOT NULL DEFAULT 100,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL REFERENCES products(id),
		movement_type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		platform TEXT NOT NULL DEFAULT '',
		order_id TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS platform_listings (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL REFERENCES products(id),
		platform TEXT NOT NULL,
		platform_sku TEXT NOT NULL DEFAULT '',
		platform_price TEXT NOT NULL DEFAULT '0',
		stock_allocated INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_sync TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_platform_listings_product ON platform_listings (product_id)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		platform TEXT NOT NULL,
		product_id TEXT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		price TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT 'PENDING',
		order_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

// migrate applies the schema. Decimal columns are stored as TEXT to keep
// exact values through shopspring/decimal round-trips.
func migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
