package postgres

import (
	"context"
	"testing"
	"time"
)

func TestMigrator_PostgresLifecycle(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// Сначала сбрасываем состояние схемы.
	if _, err := store.MigrateDown(ctx, 100); err != nil {
		t.Fatalf("migrate down reset: %v", err)
	}
	assertMigrationStatus(t, store, 0, 0)

	applied, err := store.MigrateUp(ctx, 0)
	if err != nil {
		t.Fatalf("migrate up all: %v", err)
	}
	if applied != 2 {
		t.Fatalf("expected 2 applied migrations, got %d", applied)
	}
	assertMigrationStatus(t, store, 2, 2)

	applied, err = store.MigrateUp(ctx, 0)
	if err != nil {
		t.Fatalf("idempotent migrate up: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected no-op migrate up, applied %d", applied)
	}
	assertMigrationStatus(t, store, 2, 2)

	if _, err := store.MigrateDown(ctx, 1); err != nil {
		t.Fatalf("migrate down 1: %v", err)
	}
	assertMigrationStatus(t, store, 1, 1)

	if _, err := store.MigrateDown(ctx, 0); err != nil {
		t.Fatalf("migrate down default step: %v", err)
	}
	assertMigrationStatus(t, store, 0, 0)

	rolledBack, err := store.MigrateDown(ctx, 1)
	if err != nil {
		t.Fatalf("migrate down on empty should be no-op: %v", err)
	}
	if rolledBack != 0 {
		t.Fatalf("expected nothing to roll back, got %d", rolledBack)
	}
}

func TestMigrator_GuardsAndUnsupportedDirection(t *testing.T) {
	var nilStore *Store
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := nilStore.MigrateUp(ctx, 0); err == nil {
		t.Fatal("expected error for nil store MigrateUp")
	}
	if _, err := nilStore.MigrateDown(ctx, 1); err == nil {
		t.Fatal("expected error for nil store MigrateDown")
	}
	if _, _, err := nilStore.MigrationStatus(ctx); err == nil {
		t.Fatal("expected error for nil store MigrationStatus")
	}
}

func assertMigrationStatus(t *testing.T, store *Store, wantVersion int64, wantCount int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("migration status: %v", err)
	}
	if version != wantVersion || count != wantCount {
		t.Fatalf("unexpected status: version=%d count=%d, want version=%d count=%d", version, count, wantVersion, wantCount)
	}
}
