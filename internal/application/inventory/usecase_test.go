package inventory_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/domain/entity"
	"github.com/moonhub/inventory-hub/internal/domain/repository"
)

// memStore is an in-memory stand-in for a storage backend. Its tx runner
// snapshots state before fn and restores it on error, mimicking a rollback.
type memStore struct {
	products  map[string]*entity.Product // keyed by SKU
	movements []*entity.StockMovement
	listings  []*entity.PlatformListing
	orders    []*entity.Order
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	cp.movements = append([]*entity.StockMovement(nil), s.movements...)
	cp.listings = append([]*entity.PlatformListing(nil), s.listings...)
	cp.orders = append([]*entity.Order(nil), s.orders...)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.movements = snap.movements
	s.listings = snap.listings
	s.orders = snap.orders
}

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.products[p.SKU]; ok {
		return domain.ErrDuplicateSKU
	}
	cp := *p
	r.s.products[p.SKU] = &cp
	return nil
}

func (r memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := r.s.products[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProductRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return r.GetBySKU(ctx, sku)
}

func (r memProductRepo) UpdateStock(_ context.Context, productID string, newStock int) error {
	for _, p := range r.s.products {
		if p.ID == productID {
			p.CurrentStock = newStock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memProductRepo) Delete(_ context.Context, productID string) error {
	for sku, p := range r.s.products {
		if p.ID == productID {
			delete(r.s.products, sku)
			return nil
		}
	}
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r memMovementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			out = append(out, r.s.movements[i])
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r memMovementRepo) DeleteByProduct(_ context.Context, productID string) error {
	var kept []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

type memListingRepo struct{ s *memStore }

func (r memListingRepo) Create(_ context.Context, l *entity.PlatformListing) error {
	cp := *l
	r.s.listings = append(r.s.listings, &cp)
	return nil
}

func (r memListingRepo) ListByProduct(_ context.Context, productID string) ([]*entity.PlatformListing, error) {
	var out []*entity.PlatformListing
	for _, l := range r.s.listings {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r memListingRepo) DeleteByProduct(_ context.Context, productID string) error {
	var kept []*entity.PlatformListing
	for _, l := range r.s.listings {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.s.listings = kept
	return nil
}

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.s.orders {
		if existing.OrderID == o.OrderID {
			return domain.ErrDuplicateOrder
		}
	}
	cp := *o
	r.s.orders = append(r.s.orders, &cp)
	return nil
}

func (r memOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(r.s.orders) - 1; i >= 0; i-- {
		out = append(out, r.s.orders[i])
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r memOrderRepo) DeleteByProduct(_ context.Context, productID string) error {
	var kept []*entity.Order
	for _, o := range r.s.orders {
		if o.ProductID != productID {
			kept = append(kept, o)
		}
	}
	r.s.orders = kept
	return nil
}

type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	listings repository.PlatformListingRepository,
	orders repository.OrderRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(memProductRepo{r.s}, memMovementRepo{r.s}, memListingRepo{r.s}, memOrderRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func newLedger(s *memStore) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(memTxRunner{s}, memProductRepo{s}, memMovementRepo{s})
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestAddProduct_SeedsInitialStockMovement(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)

	out, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{
		SKU: "SKU001", Name: "Widget", CostPrice: dec(500), SellingPrice: dec(1200), InitialStock: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, out.CurrentStock)
	assert.Equal(t, 10, out.MinStockLevel, "default min threshold")
	assert.Equal(t, 100, out.MaxStockLevel, "default max threshold")

	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, s.movements[0].Type)
	assert.Equal(t, 50, s.movements[0].Quantity)
	assert.Equal(t, "Initial stock", s.movements[0].Notes)
}

func TestAddProduct_ZeroInitialStockWritesNoMovement(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)

	out, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CurrentStock)
	assert.Empty(t, s.movements)
}

func TestAddProduct_DuplicateSKU(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)

	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget"})
	require.NoError(t, err)
	_, err = uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestAddProduct_Validation(t *testing.T) {
	uc := newLedger(newMemStore())

	cases := []dto.CreateProductRequest{
		{Name: "no sku"},
		{SKU: "S1"},
		{SKU: "S1", Name: "negative stock", InitialStock: -1},
		{SKU: "S1", Name: "negative cost", CostPrice: dec(-5)},
	}
	for _, in := range cases {
		_, err := uc.AddProduct(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUpdateStock_MovementTypes(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 50})
	require.NoError(t, err)

	out, err := uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 10, MovementType: "OUT"})
	require.NoError(t, err)
	assert.Equal(t, 40, out.NewStock)

	out, err = uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 5, MovementType: "IN"})
	require.NoError(t, err)
	assert.Equal(t, 45, out.NewStock)

	// ADJUSTMENT always adds, same as IN
	out, err = uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 3, MovementType: "ADJUSTMENT"})
	require.NoError(t, err)
	assert.Equal(t, 48, out.NewStock)
}

func TestUpdateStock_InsufficientStockLeavesStateUnchanged(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 40})
	require.NoError(t, err)
	movementsBefore := len(s.movements)

	_, err = uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 1000, MovementType: "OUT"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := uc.GetProduct(context.Background(), "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 40, p.CurrentStock, "balance must not move on a rejected OUT")
	assert.Len(t, s.movements, movementsBefore, "no ledger entry on a rejected OUT")
}

func TestUpdateStock_OutToExactlyZero(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 7})
	require.NoError(t, err)

	out, err := uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 7, MovementType: "OUT"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NewStock)
}

func TestUpdateStock_UnknownSKU(t *testing.T) {
	uc := newLedger(newMemStore())
	_, err := uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "NOPE", Quantity: 1, MovementType: "IN"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_InvalidInput(t *testing.T) {
	uc := newLedger(newMemStore())

	cases := []dto.UpdateStockRequest{
		{SKU: "SKU001", Quantity: 1, MovementType: "TRANSFER"},
		{SKU: "SKU001", Quantity: 0, MovementType: "IN"},
		{SKU: "SKU001", Quantity: -3, MovementType: "OUT"},
		{Quantity: 1, MovementType: "IN"},
	}
	for _, in := range cases {
		_, err := uc.UpdateStock(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestLedger_BalanceMatchesMovementSum(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 50})
	require.NoError(t, err)

	steps := []dto.UpdateStockRequest{
		{SKU: "SKU001", Quantity: 10, MovementType: "OUT"},
		{SKU: "SKU001", Quantity: 20, MovementType: "IN"},
		{SKU: "SKU001", Quantity: 4, MovementType: "ADJUSTMENT"},
		{SKU: "SKU001", Quantity: 9, MovementType: "OUT"},
	}
	for _, in := range steps {
		_, err := uc.UpdateStock(context.Background(), in)
		require.NoError(t, err)
	}

	sum := 0
	for _, m := range s.movements {
		sum += entity.SignedQuantity(m.Type, m.Quantity)
	}
	p, err := uc.GetProduct(context.Background(), "SKU001")
	require.NoError(t, err)
	assert.Equal(t, p.CurrentStock, sum, "balance must equal the signed movement sum")
	assert.Equal(t, 55, p.CurrentStock)
}

func TestDeleteProduct_CascadesHistory(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	out, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 10})
	require.NoError(t, err)

	s.listings = append(s.listings, &entity.PlatformListing{ID: "l1", ProductID: out.ID, Platform: "amazon"})
	s.orders = append(s.orders, &entity.Order{ID: "o1", OrderID: "AMZ-1", ProductID: out.ID, Quantity: 1})

	require.NoError(t, uc.DeleteProduct(context.Background(), "SKU001"))

	assert.Empty(t, s.products)
	assert.Empty(t, s.movements)
	assert.Empty(t, s.listings)
	assert.Empty(t, s.orders)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	uc := newLedger(newMemStore())
	assert.ErrorIs(t, uc.DeleteProduct(context.Background(), "NOPE"), domain.ErrNotFound)
}

func TestListMovements(t *testing.T) {
	s := newMemStore()
	uc := newLedger(s)
	_, err := uc.AddProduct(context.Background(), dto.CreateProductRequest{SKU: "SKU001", Name: "Widget", InitialStock: 5})
	require.NoError(t, err)
	_, err = uc.UpdateStock(context.Background(), dto.UpdateStockRequest{SKU: "SKU001", Quantity: 2, MovementType: "OUT", Platform: "meesho", OrderID: "ME-9"})
	require.NoError(t, err)

	moves, err := uc.ListMovements(context.Background(), "SKU001", 0, 0)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "OUT", moves[0].Type, "newest first")
	assert.Equal(t, "meesho", moves[0].Platform)
	assert.Equal(t, "ME-9", moves[0].OrderID)

	_, err = uc.ListMovements(context.Background(), "NOPE", 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
