package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/herdpulse/config"
	"github.com/guttosm/herdpulse/internal/api"
	"github.com/guttosm/herdpulse/internal/logger"
	"github.com/guttosm/herdpulse/internal/seed"
	"github.com/guttosm/herdpulse/internal/service"
	"github.com/guttosm/herdpulse/internal/storage"
	"github.com/guttosm/herdpulse/internal/storage/memory"
)

// stores bundles the repositories selected by STORAGE_DRIVER together with
// the hooks the app needs for readiness and shutdown.
type stores struct {
	livestock storage.LivestockRepository
	orders    storage.OrdersRepository
	ping      func(ctx context.Context) error // nil for the memory driver
	close     func()
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the storage backend selected by STORAGE_DRIVER (PostgreSQL or in-memory).
//   - Initializes the repository layer (LivestockRepository, OrdersRepository).
//   - Builds the DashboardService with the configured timeouts and limits.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	st, err := openStores(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize service layer (business logic)
	svc := service.NewDashboardService(
		st.livestock,
		st.orders,
		service.WithRepoTimeout(cfg.Dashboard.RepoTimeout),
		service.WithRecentOrdersLimit(cfg.Dashboard.RecentOrdersLimit),
	)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(st.ping)
	healthHandler.Register(router)

	return router, st.close, nil
}

// openStores builds the repositories for cfg.Storage.Driver. An empty driver
// means PostgreSQL.
func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		st := &stores{
			livestock: memory.NewLivestockRepo(),
			orders:    memory.NewOrdersRepo(),
			close:     func() {},
		}
		if cfg.Storage.SeedFile != "" {
			f, err := seed.LoadFile(cfg.Storage.SeedFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load seed file: %w", err)
			}
			if _, err := seed.Apply(ctx, f, st.livestock, st.orders, seed.DefaultBatchSize); err != nil {
				return nil, fmt.Errorf("failed to seed memory store: %w", err)
			}
		}
		logger.L().Info().Str("driver", config.DriverMemory).Msg("storage ready")
		return st, nil

	case "", config.DriverPostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		logger.L().Info().Str("driver", config.DriverPostgres).Msg("storage ready")
		return &stores{
			livestock: storage.NewLivestockRepository(db),
			orders:    storage.NewOrdersRepository(db),
			ping:      db.PingContext,
			close:     func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
