// Package platform manages marketplace connections and listings. The sync
// integrations themselves are stubs: connect stores credentials and flips the
// status, sync only validates the connection. Real marketplace API calls live
// outside this service.
package platform

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

// Connection statuses.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// Known marketplaces, matching the dashboard's platform page.
var knownPlatforms = []string{"amazon", "flipkart", "meesho", "shopify", "ebay"}

// PlatformUseCase tracks marketplace connection state (in-memory, per process)
// and manages product listings.
type PlatformUseCase struct {
	mu          sync.Mutex
	credentials map[string]map[string]string
	products    repository.ProductRepository
	listings    repository.PlatformListingRepository
}

// NewPlatformUseCase builds the use case with all platforms disconnected.
func NewPlatformUseCase(products repository.ProductRepository, listings repository.PlatformListingRepository) *PlatformUseCase {
	return &PlatformUseCase{
		credentials: make(map[string]map[string]string),
		products:    products,
		listings:    listings,
	}
}

// Status lists every known platform and its connection state, sorted by name.
func (uc *PlatformUseCase) Status() []dto.PlatformStatusDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]dto.PlatformStatusDTO, 0, len(knownPlatforms))
	for _, name := range knownPlatforms {
		status := StatusDisconnected
		if _, ok := uc.credentials[name]; ok {
			status = StatusConnected
		}
		out = append(out, dto.PlatformStatusDTO{Name: name, Status: status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Connect stores credentials for a known platform and marks it connected.
func (uc *PlatformUseCase) Connect(name string, in dto.ConnectPlatformRequest) error {
	name = strings.ToLower(name)
	if !known(name) {
		return domain.ErrPlatformUnknown
	}
	if len(in.Credentials) == 0 {
		return domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.credentials[name] = in.Credentials
	return nil
}

// Sync validates the connection. The actual marketplace push is a stub.
func (uc *PlatformUseCase) Sync(name string) error {
	name = strings.ToLower(name)
	if !known(name) {
		return domain.ErrPlatformUnknown
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.credentials[name]; !ok {
		return domain.ErrPlatformOffline
	}
	return nil
}

func known(name string) bool {
	for _, p := range knownPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

// AddListing attaches a marketplace listing to a product identified by SKU.
func (uc *PlatformUseCase) AddListing(ctx context.Context, sku string, in dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if in.Platform == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	listing := &entity.PlatformListing{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		Platform:       strings.ToLower(in.Platform),
		PlatformSKU:    in.PlatformSKU,
		PlatformPrice:  in.PlatformPrice,
		StockAllocated: in.StockAllocated,
		IsActive:       true,
	}
	if err := uc.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return toListingResponse(listing), nil
}

// ListListings returns the listings of a product identified by SKU.
func (uc *PlatformUseCase) ListListings(ctx context.Context, sku string) ([]dto.ListingResponse, error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.listings.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toListingResponse(l))
	}
	return out, nil
}

func toListingResponse(l *entity.PlatformListing) *dto.ListingResponse {
	var lastSync *time.Time
	if l.LastSync != nil {
		t := *l.LastSync
		lastSync = &t
	}
	return &dto.ListingResponse{
		ID:             l.ID,
		ProductID:      l.ProductID,
		Platform:       l.Platform,
		PlatformSKU:    l.PlatformSKU,
		PlatformPrice:  l.PlatformPrice,
		StockAllocated: l.StockAllocated,
		IsActive:       l.IsActive,
		LastSync:       lastSync,
	}
}
