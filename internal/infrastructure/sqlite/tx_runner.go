package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a sqlite transaction.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner builds the runner with the db.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run begins a transaction, executes fn with repos bound to the tx, then
// commits, or rolls back on error. fn's error is returned unchanged so
// callers can match domain sentinels.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	listings repository.PlatformListingRepository,
	orders repository.OrderRepository,
) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(
		NewProductRepository(tx),
		NewStockMovementRepository(tx),
		NewPlatformListingRepository(tx),
		NewOrderRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
