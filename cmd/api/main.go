package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/moonhub/inventory-hub/internal/application/auth"
	"github.com/moonhub/inventory-hub/internal/application/export"
	"github.com/moonhub/inventory-hub/internal/application/inventory"
	"github.com/moonhub/inventory-hub/internal/application/orders"
	"github.com/moonhub/inventory-hub/internal/application/platform"
	"github.com/moonhub/inventory-hub/internal/application/report"
	infraredis "github.com/moonhub/inventory-hub/internal/infrastructure/redis"
	"github.com/moonhub/inventory-hub/internal/infrastructure/storage"
	httpRouter "github.com/moonhub/inventory-hub/internal/interfaces/http"
	"github.com/moonhub/inventory-hub/pkg/config"
	"github.com/moonhub/inventory-hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("open storage backend")
	}
	defer store.Close()

	// Optional dashboard stats cache
	var statsCache report.StatsCache
	if cfg.Redis.Addr != "" {
		cache, err := infraredis.NewCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer cache.Close()
		statsCache = cache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("stats cache enabled")
	}

	ledgerUC := inventory.NewLedgerUseCase(store.TxRunner(), store.Products(), store.Movements())
	aggregatorUC := report.NewAggregatorUseCase(store.Reports(), statsCache)
	orderUC := orders.NewOrderUseCase(store.TxRunner(), store.Orders())
	platformUC := platform.NewPlatformUseCase(store.Products(), store.Listings())
	exportUC := export.NewExportUseCase(aggregatorUC, "")
	authUC := auth.NewAuthUseCase(auth.Config{
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		JWTExpMinutes:     cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI at /docs when the spec file is present
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Inventory Hub API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:     ledgerUC,
		AggregatorUC: aggregatorUC,
		OrderUC:      orderUC,
		PlatformUC:   platformUC,
		ExportUC:     exportUC,
		AuthUC:       authUC,
		Store:        store,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
