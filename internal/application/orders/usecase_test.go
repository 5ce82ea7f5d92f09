package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/orders"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

// fixture implements all repository ports and the tx runner over plain slices.
type fixture struct {
	product   *entity.Product
	movements []*entity.StockMovement
	orders    []*entity.Order
}

func (f *fixture) Create(_ context.Context, p *entity.Product) error { return nil }

func (f *fixture) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if f.product != nil && f.product.SKU == sku {
		cp := *f.product
		return &cp, nil
	}
	return nil, nil
}

func (f *fixture) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return f.GetBySKU(ctx, sku)
}

func (f *fixture) UpdateStock(_ context.Context, _ string, newStock int) error {
	f.product.CurrentStock = newStock
	return nil
}

func (f *fixture) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }
func (f *fixture) Delete(_ context.Context, _ string) error          { return nil }

func (f *fixture) createMovement(m *entity.StockMovement) {
	cp := *m
	f.movements = append(f.movements, &cp)
}

type fixtureMovementRepo struct{ f *fixture }

func (r fixtureMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.f.createMovement(m)
	return nil
}

func (r fixtureMovementRepo) ListByProduct(_ context.Context, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return r.f.movements, nil
}

func (r fixtureMovementRepo) DeleteByProduct(_ context.Context, _ string) error { return nil }

type fixtureListingRepo struct{}

func (fixtureListingRepo) Create(_ context.Context, _ *entity.PlatformListing) error { return nil }
func (fixtureListingRepo) ListByProduct(_ context.Context, _ string) ([]*entity.PlatformListing, error) {
	return nil, nil
}
func (fixtureListingRepo) DeleteByProduct(_ context.Context, _ string) error { return nil }

type fixtureOrderRepo struct{ f *fixture }

func (r fixtureOrderRepo) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.f.orders {
		if existing.OrderID == o.OrderID {
			return domain.ErrDuplicateOrder
		}
	}
	cp := *o
	r.f.orders = append(r.f.orders, &cp)
	return nil
}

func (r fixtureOrderRepo) List(_ context.Context, _, _ int) ([]*entity.Order, error) {
	return r.f.orders, nil
}

func (r fixtureOrderRepo) DeleteByProduct(_ context.Context, _ string) error { return nil }

type fixtureTxRunner struct{ f *fixture }

func (r fixtureTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	listings repository.PlatformListingRepository,
	orderRepo repository.OrderRepository,
) error) error {
	// Rollback: restore balance and discard appended rows on error.
	stockBefore := 0
	if r.f.product != nil {
		stockBefore = r.f.product.CurrentStock
	}
	movementsBefore := len(r.f.movements)
	ordersBefore := len(r.f.orders)

	err := fn(r.f, fixtureMovementRepo{r.f}, fixtureListingRepo{}, fixtureOrderRepo{r.f})
	if err != nil {
		if r.f.product != nil {
			r.f.product.CurrentStock = stockBefore
		}
		r.f.movements = r.f.movements[:movementsBefore]
		r.f.orders = r.f.orders[:ordersBefore]
		return err
	}
	return nil
}

func newFixture(stock int) *fixture {
	return &fixture{product: &entity.Product{ID: "p1", SKU: "SKU001", Name: "Widget", CurrentStock: stock}}
}

func TestCreateOrder_FulfillsFromStock(t *testing.T) {
	f := newFixture(50)
	uc := orders.NewOrderUseCase(fixtureTxRunner{f}, fixtureOrderRepo{f})

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderID: "AMZ-1001", Platform: "amazon", SKU: "SKU001", Quantity: 3, Price: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, 47, f.product.CurrentStock)

	require.Len(t, f.movements, 1)
	m := f.movements[0]
	assert.Equal(t, entity.MovementTypeOut, m.Type)
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, "amazon", m.Platform)
	assert.Equal(t, "AMZ-1001", m.OrderID)
	assert.Equal(t, "Order fulfillment for AMZ-1001", m.Notes)
}

func TestCreateOrder_InsufficientStockLeavesNoTrace(t *testing.T) {
	f := newFixture(2)
	uc := orders.NewOrderUseCase(fixtureTxRunner{f}, fixtureOrderRepo{f})

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderID: "AMZ-1", SKU: "SKU001", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, f.product.CurrentStock)
	assert.Empty(t, f.orders)
	assert.Empty(t, f.movements)
}

func TestCreateOrder_DuplicateOrderID(t *testing.T) {
	f := newFixture(50)
	uc := orders.NewOrderUseCase(fixtureTxRunner{f}, fixtureOrderRepo{f})

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderID: "FLK-1", SKU: "SKU001", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{OrderID: "FLK-1", SKU: "SKU001", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
	assert.Equal(t, 49, f.product.CurrentStock, "rejected duplicate must not move stock")
}

func TestCreateOrder_UnknownSKU(t *testing.T) {
	f := newFixture(50)
	uc := orders.NewOrderUseCase(fixtureTxRunner{f}, fixtureOrderRepo{f})

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderID: "X-1", SKU: "NOPE", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(50)
	uc := orders.NewOrderUseCase(fixtureTxRunner{f}, fixtureOrderRepo{f})

	cases := []dto.CreateOrderRequest{
		{SKU: "SKU001", Quantity: 1},
		{OrderID: "X-1", Quantity: 1},
		{OrderID: "X-1", SKU: "SKU001", Quantity: 0},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
