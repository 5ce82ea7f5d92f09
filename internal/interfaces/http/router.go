package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moonhub/inventory-hub/internal/application/auth"
	"github.com/moonhub/inventory-hub/internal/application/export"
	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/application/orders"
	"github.com/moonhub/inventory-hub/internal/application/platform"
	"github.com/moonhub/inventory-hub/internal/application/report"
	"github.com/moonhub/inventory-hub/internal/infrastructure/storage"
)

// RouterDeps are the router dependencies.
type RouterDeps struct {
	LedgerUC     *inventory.LedgerUseCase
	AggregatorUC *report.AggregatorUseCase
	OrderUC      *orders.OrderUseCase
	PlatformUC   *platform.PlatformUseCase
	ExportUC     *export.ExportUseCase
	AuthUC       *auth.AuthUseCase
	Store        storage.Store
	JWTSecret    string
}

// Router registers the API routes. Reads are public, mutations require a
// Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger())
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.Store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products
	productHandler := NewProductHandler(deps.LedgerUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", protected, productHandler.Create)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Delete("/:sku", protected, productHandler.Delete)
	products.Get("/:sku/movements", productHandler.ListMovements)

	// Stock movements
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	api.Post("/inventory/movements", protected, inventoryHandler.UpdateStock)

	// Reports
	reportHandler := NewReportHandler(deps.AggregatorUC)
	api.Get("/low-stock-alerts", reportHandler.LowStockAlerts)
	api.Get("/report", reportHandler.InventoryReport)
	api.Get("/reports/valuation", reportHandler.Valuation)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.AggregatorUC)
	api.Get("/dashboard/stats", dashboardHandler.Stats)
	api.Get("/stock-chart", dashboardHandler.StockChart)

	// Export
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/export/inventory", protected, exportHandler.ExportInventory)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := api.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", protected, orderHandler.Create)

	// Platforms and listings
	platformHandler := NewPlatformHandler(deps.PlatformUC)
	platforms := api.Group("/platforms")
	platforms.Get("/status", platformHandler.Status)
	platforms.Post("/:name/connect", protected, platformHandler.Connect)
	platforms.Post("/:name/sync", protected, platformHandler.Sync)
	products.Get("/:sku/listings", platformHandler.ListListings)
	products.Post("/:sku/listings", protected, platformHandler.AddListing)
}
