// Package orders records marketplace orders and fulfills them from stock
// through the ledger, so order processing obeys the same balance invariant.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
	"github.com/moonhub/inventory-hub/internal/metrics"
)

// OrderUseCase creates and lists marketplace orders.
type OrderUseCase struct {
	tx     inventory.TxRunner
	orders repository.OrderRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(tx inventory.TxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, orders: orderRepo}
}

// Create records the order row and the matching OUT movement in one
// transaction. An order that would drive stock negative is rejected with
// domain.ErrInsufficientStock and leaves no trace.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.OrderID == "" || in.SKU == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		OrderID:   in.OrderID,
		Platform:  in.Platform,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Status:    entity.OrderStatusPending,
		OrderDate: now,
		CreatedAt: now,
	}

	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		_ repository.PlatformListingRepository,
		orderRepo repository.OrderRepository,
	) error {
		product, err := products.GetBySKUForUpdate(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CurrentStock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		order.ProductID = product.ID
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if err := products.UpdateStock(ctx, product.ID, product.CurrentStock-in.Quantity); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeOut,
			Quantity:  in.Quantity,
			Platform:  in.Platform,
			OrderID:   in.OrderID,
			Notes:     fmt.Sprintf("Order fulfillment for %s", in.OrderID),
			CreatedAt: now,
		}
		return movements.Create(ctx, mov)
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStockTotal.Inc()
		}
		return nil, err
	}

	metrics.OrdersProcessedTotal.WithLabelValues(in.Platform).Inc()
	metrics.StockMovementsTotal.WithLabelValues(entity.MovementTypeOut).Inc()
	return toOrderResponse(order), nil
}

// List returns recorded orders, newest first.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:        o.ID,
		OrderID:   o.OrderID,
		Platform:  o.Platform,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Status:    o.Status,
		OrderDate: o.OrderDate,
	}
}
