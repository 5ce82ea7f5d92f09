// Package inventory holds the stock-ledger use case: product lifecycle and
// movement registration with the balance invariant enforced transactionally.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
	"github.com/moonhub/inventory-hub/internal/metrics"
)

// initialStockNote is the ledger note for the IN movement seeded by AddProduct.
const initialStockNote = "Initial stock"

// LedgerUseCase owns product lifecycle and stock movements. Every mutation runs
// through the TxRunner so current_stock and the movement ledger always agree,
// even when a write fails mid-way.
type LedgerUseCase struct {
	tx       TxRunner
	products repository.ProductRepository
	moves    repository.StockMovementRepository
}

// NewLedgerUseCase builds the use case. The plain repositories serve the
// read-only paths; all writes go through tx.
func NewLedgerUseCase(tx TxRunner, products repository.ProductRepository, moves repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, products: products, moves: moves}
}

// AddProduct creates a product. If InitialStock is positive the balance starts
// there and one IN movement with note "Initial stock" is written in the same
// transaction. Returns domain.ErrDuplicateSKU when the SKU is taken.
func (uc *LedgerUseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStockLevel <= 0 {
		in.MinStockLevel = entity.DefaultMinStockLevel
	}
	if in.MaxStockLevel <= 0 {
		in.MaxStockLevel = entity.DefaultMaxStockLevel
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Category:      in.Category,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  in.InitialStock,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		_ repository.PlatformListingRepository,
		_ repository.OrderRepository,
	) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		if in.InitialStock > 0 {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeIn,
				Quantity:  in.InitialStock,
				Notes:     initialStockNote,
				CreatedAt: now,
			}
			if err := movements.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	if in.InitialStock > 0 {
		metrics.StockMovementsTotal.WithLabelValues(entity.MovementTypeIn).Inc()
	}
	return toProductResponse(product), nil
}

// UpdateStock applies one movement to a SKU. The product row is locked before
// the balance check so concurrent OUT movements cannot both pass the guard
// against a stale balance. IN and ADJUSTMENT add, OUT subtracts and fails with
// domain.ErrInsufficientStock when the balance would go negative; on failure
// neither the balance nor the ledger changes.
func (uc *LedgerUseCase) UpdateStock(ctx context.Context, in dto.UpdateStockRequest) (*dto.StockUpdateResponse, error) {
	if in.SKU == "" || in.Quantity <= 0 || !entity.ValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}

	var newStock int
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		_ repository.PlatformListingRepository,
		_ repository.OrderRepository,
	) error {
		product, err := products.GetBySKUForUpdate(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if in.MovementType == entity.MovementTypeOut && product.CurrentStock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		newStock = product.CurrentStock + entity.SignedQuantity(in.MovementType, in.Quantity)

		if err := products.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      in.MovementType,
			Quantity:  in.Quantity,
			Platform:  in.Platform,
			OrderID:   in.OrderID,
			Notes:     in.Notes,
			CreatedAt: time.Now(),
		}
		return movements.Create(ctx, mov)
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStockTotal.Inc()
		}
		return nil, err
	}

	metrics.StockMovementsTotal.WithLabelValues(in.MovementType).Inc()
	return &dto.StockUpdateResponse{
		SKU:          in.SKU,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		NewStock:     newStock,
	}, nil
}

// DeleteProduct removes a product and everything referencing it (listings,
// movements, orders) in one transaction. Returns domain.ErrNotFound for an
// unknown SKU.
func (uc *LedgerUseCase) DeleteProduct(ctx context.Context, sku string) error {
	if sku == "" {
		return domain.ErrInvalidInput
	}
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		listings repository.PlatformListingRepository,
		orders repository.OrderRepository,
	) error {
		product, err := products.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := listings.DeleteByProduct(ctx, product.ID); err != nil {
			return err
		}
		if err := movements.DeleteByProduct(ctx, product.ID); err != nil {
			return err
		}
		if err := orders.DeleteByProduct(ctx, product.ID); err != nil {
			return err
		}
		return products.Delete(ctx, product.ID)
	})
	if err != nil {
		return err
	}
	metrics.ProductsDeletedTotal.Inc()
	return nil
}

// GetProduct returns one product by SKU, or domain.ErrNotFound.
func (uc *LedgerUseCase) GetProduct(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts returns all products ordered by name.
func (uc *LedgerUseCase) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Total: len(items), Items: items}, nil
}

// ListMovements returns the ledger entries for a SKU, newest first.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, sku string, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	moves, err := uc.moves.ListByProduct(ctx, product.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Platform:  m.Platform,
			OrderID:   m.OrderID,
			Notes:     m.Notes,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
