package postgres

import (
	"context"
	"fmt"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

var _ repository.PlatformListingRepository = (*PlatformListingRepo)(nil)

// PlatformListingRepo implements the PlatformListingRepository port on PostgreSQL.
type PlatformListingRepo struct {
	q Querier
}

// NewPlatformListingRepository builds the adapter. Pass pool or tx (Querier).
func NewPlatformListingRepository(q Querier) *PlatformListingRepo {
	return &PlatformListingRepo{q: q}
}

// Create persists a marketplace listing.
func (r *PlatformListingRepo) Create(ctx context.Context, l *entity.PlatformListing) error {
	query := `
		INSERT INTO platform_listings (id, product_id, platform, platform_sku, platform_price, stock_allocated, is_active, last_sync)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.ProductID, l.Platform, l.PlatformSKU, l.PlatformPrice, l.StockAllocated, l.IsActive, l.LastSync,
	)
	if err != nil {
		return fmt.Errorf("insert platform listing: %w", err)
	}
	return nil
}

// ListByProduct returns the listings of a product.
func (r *PlatformListingRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.PlatformListing, error) {
	query := `
		SELECT id, product_id, platform, platform_sku, platform_price, stock_allocated, is_active, last_sync
		FROM platform_listings WHERE product_id = $1 ORDER BY platform`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list platform listings: %w", err)
	}
	defer rows.Close()
	var list []*entity.PlatformListing
	for rows.Next() {
		var l entity.PlatformListing
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Platform, &l.PlatformSKU, &l.PlatformPrice, &l.StockAllocated, &l.IsActive, &l.LastSync); err != nil {
			return nil, fmt.Errorf("scan platform listing: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteByProduct removes all listings of a product (cascade delete).
func (r *PlatformListingRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM platform_listings WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete platform listings: %w", err)
	}
	return nil
}
