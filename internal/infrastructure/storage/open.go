package storage

import (
	"context"
	"fmt"

	"github.com/moonhub/inventory-hub/internal/domain"
	"github.com/moonhub/inventory-hub/internal/infrastructure/postgres"
	"github.com/moonhub/inventory-hub/internal/infrastructure/sqlite"
	"github.com/moonhub/inventory-hub/pkg/config"
)

// Open builds the backend named by the configuration. Connection failures wrap
// domain.ErrStoreUnavailable.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		st, err := postgres.NewStore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.NewStore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
