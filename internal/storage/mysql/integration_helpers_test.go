package mysql

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

const defaultLocalIntegrationDSN = "ministore:ministore@tcp(localhost:3306)/ministore?parseTime=true&loc=UTC"

func openMySQLStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	store := openRawMySQLStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Исходная схема живёт вне репозитория, для тестов хватает таблиц из моделей.
	err := store.DB().WithContext(ctx).AutoMigrate(
		&orderModel{}, &productModel{}, &paymentModel{},
		&logisticsModel{}, &batchModel{}, &customFieldModel{},
	)
	if err != nil {
		t.Fatalf("create integration tables: %v", err)
	}
	truncateAllTablesForIntegrationTest(t, store)

	return store
}

func openRawMySQLStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	candidates := []string{
		strings.TrimSpace(os.Getenv("MINISTORE_MYSQL_TEST_DSN")),
		strings.TrimSpace(os.Getenv("MINISTORE_MYSQL_DSN")),
		defaultLocalIntegrationDSN,
	}

	seen := map[string]struct{}{}
	var openErrs []string
	for _, dsn := range candidates {
		if dsn == "" {
			continue
		}
		if _, ok := seen[dsn]; ok {
			continue
		}
		seen[dsn] = struct{}{}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		store, err := Open(ctx, dsn, nil)
		cancel()
		if err == nil {
			t.Cleanup(func() {
				_ = store.Close()
			})
			return store
		}
		openErrs = append(openErrs, fmt.Sprintf("%s: %v", dsn, err))
	}

	t.Skipf("mysql is not available for integration tests: %s", strings.Join(openErrs, " | "))
	return nil
}

func truncateAllTablesForIntegrationTest(t *testing.T, store *Store) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, table := range []string{
		"order_custom_fields",
		"ministore_order_batch",
		"ministore_order_logistics",
		"ministore_order_payment",
		"ministore_order_products",
		"ministore_orders",
	} {
		if err := store.DB().WithContext(ctx).Exec("TRUNCATE TABLE `" + table + "`").Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}
