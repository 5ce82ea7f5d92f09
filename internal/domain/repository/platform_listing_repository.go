package repository

import (
	"context"

	"github.com/moonhub/inventory-hub/internal/domain/entity"
)

// PlatformListingRepository is the persistence port for marketplace listings.
type PlatformListingRepository interface {
	Create(ctx context.Context, listing *entity.PlatformListing) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.PlatformListing, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
