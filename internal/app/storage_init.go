package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/ministore/internal/health"
	"github.com/vladislavdragonenkov/ministore/internal/metrics"
	"github.com/vladislavdragonenkov/ministore/internal/storage/instrumented"
	"github.com/vladislavdragonenkov/ministore/internal/storage/memory"
	"github.com/vladislavdragonenkov/ministore/internal/storage/mysql"
	"github.com/vladislavdragonenkov/ministore/internal/storage/postgres"
)

const storagePingTimeout = 2 * time.Second

// runtimeDependencies содержит всё, что Run получает от выбранного хранилища.
type runtimeDependencies struct {
	repos          domain.Repositories
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry, m *metrics.StorageMetrics) (*runtimeDependencies, error) {
	deps, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.repos = instrumented.Wrap(deps.repos, logger.WithField("layer", "storage"), m)
	return deps, nil
}

func openStorage(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		logger.Info("storage: memory")
		return &runtimeDependencies{
			repos: memory.NewRepositories(memory.NewStore()),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres dsn is required")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.WithMaxOpenConns(cfg.PostgresMaxConns))
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("postgres schema is up to date")
		}
		logger.Info("storage: postgres")
		return &runtimeDependencies{
			repos:          postgres.NewRepositories(store),
			storageChecker: healthcheck.NewStorageChecker("postgres", store, storagePingTimeout),
			closeFn:        store.Close,
		}, nil

	case StorageDriverMySQL:
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("mysql dsn is required")
		}
		store, err := mysql.Open(ctx, cfg.MySQLDSN, cfg.MySQLReplicaDSNs)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		logger.WithField("replicas", len(cfg.MySQLReplicaDSNs)).Info("storage: mysql")
		return &runtimeDependencies{
			repos:          mysql.NewRepositories(store),
			storageChecker: healthcheck.NewStorageChecker("mysql", store, storagePingTimeout),
			closeFn:        store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
