// Command seed loads a set of sample products for local development and demos.
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/infrastructure/storage"
	"github.com/moonhub/inventory-hub/pkg/config"
	"github.com/moonhub/inventory-hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("open storage backend")
	}
	defer store.Close()

	ledger := inventory.NewLedgerUseCase(store.TxRunner(), store.Products(), store.Movements())

	samples := []dto.CreateProductRequest{
		{SKU: "WH001", Name: "Wireless Headphones", Category: "Electronics", CostPrice: dec(800), SellingPrice: dec(1500), InitialStock: 45, MinStockLevel: 10},
		{SKU: "KB002", Name: "Mechanical Keyboard", Category: "Electronics", CostPrice: dec(1200), SellingPrice: dec(2200), InitialStock: 8, MinStockLevel: 15},
		{SKU: "MS003", Name: "Gaming Mouse", Category: "Electronics", CostPrice: dec(400), SellingPrice: dec(800), InitialStock: 25, MinStockLevel: 10},
		{SKU: "CH004", Name: "Phone Charger", Category: "Accessories", CostPrice: dec(150), SellingPrice: dec(350), InitialStock: 5, MinStockLevel: 20},
		{SKU: "CS005", Name: "Phone Case", Category: "Accessories", CostPrice: dec(80), SellingPrice: dec(250), InitialStock: 60, MinStockLevel: 25},
		{SKU: "SP006", Name: "Bluetooth Speaker", Category: "Electronics", CostPrice: dec(600), SellingPrice: dec(1200), InitialStock: 0, MinStockLevel: 8},
		{SKU: "CB007", Name: "USB Cable", Category: "Accessories", CostPrice: dec(50), SellingPrice: dec(150), InitialStock: 100, MinStockLevel: 30},
		{SKU: "TB008", Name: "Tablet Stand", Category: "Accessories", CostPrice: dec(300), SellingPrice: dec(600), InitialStock: 15, MinStockLevel: 12},
	}

	created := 0
	for _, p := range samples {
		if _, err := ledger.AddProduct(ctx, p); err != nil {
			if err == domain.ErrDuplicateSKU {
				log.Info().Str("sku", p.SKU).Msg("already seeded, skipping")
				continue
			}
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("seed product")
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(samples)).Msg("seed finished")
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
