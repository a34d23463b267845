package app

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/metrics"
	"github.com/vladislavdragonenkov/ministore/internal/storage/storagetest"
)

func testMetrics() *metrics.StorageMetrics {
	return metrics.NewStorageMetricsWithRegisterer(prometheus.NewRegistry())
}

func TestInitRuntimeDependencies_Memory(t *testing.T) {
	t.Parallel()

	deps, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMemory,
	}, log.WithField("test", "memory-storage"), testMetrics())
	if err != nil {
		t.Fatalf("initRuntimeDependencies(memory) failed: %v", err)
	}
	if deps.repos.Orders == nil || deps.repos.Payments == nil || deps.repos.CustomFields == nil {
		t.Fatal("repositories should not be nil for memory storage")
	}
	if deps.storageChecker != nil {
		t.Fatal("memory storage has no checker")
	}
	if deps.closeFn != nil {
		t.Fatal("memory storage has nothing to close")
	}
}

func TestInitRuntimeDependencies_MemoryContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) domain.Repositories {
		deps, err := initRuntimeDependencies(context.Background(), DefaultConfig(), log.WithField("test", "contract"), testMetrics())
		if err != nil {
			t.Fatalf("initRuntimeDependencies failed: %v", err)
		}
		return deps.repos
	})
}

func TestInitRuntimeDependencies_PostgresRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverPostgres,
	}, log.WithField("test", "postgres-missing-dsn"), testMetrics())
	if err == nil {
		t.Fatal("expected error when postgres driver is selected without DSN")
	}
}

func TestInitRuntimeDependencies_MySQLRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMySQL,
	}, log.WithField("test", "mysql-missing-dsn"), testMetrics())
	if err == nil {
		t.Fatal("expected error when mysql driver is selected without DSN")
	}
}

func TestInitRuntimeDependencies_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: "sqlite",
	}, log.WithField("test", "unsupported-driver"), testMetrics())
	if err == nil {
		t.Fatal("expected error for unsupported storage driver")
	}
}
