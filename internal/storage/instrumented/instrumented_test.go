package instrumented_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/metrics"
	"github.com/vladislavdragonenkov/ministore/internal/storage/instrumented"
	"github.com/vladislavdragonenkov/ministore/internal/storage/memory"
	"github.com/vladislavdragonenkov/ministore/internal/storage/storagetest"
)

func newInstrumented(t *testing.T) (domain.Repositories, *prometheus.Registry, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	reg := prometheus.NewRegistry()

	repos := instrumented.Wrap(
		memory.NewRepositories(memory.NewStore()),
		log.NewEntry(logger).WithField("component", "storage"),
		metrics.NewStorageMetricsWithRegisterer(reg),
	)
	return repos, reg, hook
}

func TestWrap_PassesContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) domain.Repositories {
		repos, _, _ := newInstrumented(t)
		return repos
	})
}

func TestWrap_RecordsResults(t *testing.T) {
	repos, reg, hook := newInstrumented(t)
	ctx := context.Background()

	id, err := repos.Orders.Create(ctx, storagetest.SampleOrder(1))
	require.NoError(t, err)

	_, err = repos.Payments.GetByOrderID(ctx, id)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)

	err = repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id, Status: domain.PaymentStatus(77)})
	require.ErrorIs(t, err, domain.ErrInvalidPaymentStatus)

	expected := `
# HELP ministore_storage_operations_total Total number of storage operations by repository, operation and result
# TYPE ministore_storage_operations_total counter
ministore_storage_operations_total{operation="Create",repository="orders",result="ok"} 1
ministore_storage_operations_total{operation="Create",repository="payments",result="invalid"} 1
ministore_storage_operations_total{operation="GetByOrderID",repository="payments",result="not_found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ministore_storage_operations_total"))

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, log.DebugLevel, entries[0].Level)
	assert.Equal(t, "orders", entries[0].Data["repository"])
	assert.Equal(t, log.WarnLevel, entries[2].Level)
	assert.Equal(t, "invalid", entries[2].Data["result"])
}

func TestWrap_NilMetricsAndLogger(t *testing.T) {
	repos := instrumented.Wrap(memory.NewRepositories(memory.NewStore()), nil, nil)

	_, err := repos.Orders.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}
