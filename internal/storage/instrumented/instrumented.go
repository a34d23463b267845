// Package instrumented оборачивает репозитории логированием и метриками.
// Сами репозитории ничего не логируют.
package instrumented

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/metrics"
)

// Wrap возвращает набор репозиториев, который пишет в лог и метрики каждую операцию.
// metrics может быть nil.
func Wrap(repos domain.Repositories, logger *log.Entry, m *metrics.StorageMetrics) domain.Repositories {
	if logger == nil {
		logger = log.WithField("component", "storage")
	}
	newObserver := func(repository string) observer {
		return observer{
			repository: repository,
			logger:     logger.WithField("repository", repository),
			metrics:    m,
		}
	}

	return domain.Repositories{
		Orders:       &orderRepository{next: repos.Orders, obs: newObserver("orders")},
		Products:     &productRepository{next: repos.Products, obs: newObserver("products")},
		Payments:     &paymentRepository{next: repos.Payments, obs: newObserver("payments")},
		Logistics:    &logisticsRepository{next: repos.Logistics, obs: newObserver("logistics")},
		Batches:      &batchRepository{next: repos.Batches, obs: newObserver("batches")},
		CustomFields: &customFieldRepository{next: repos.CustomFields, obs: newObserver("custom_fields")},
	}
}

type observer struct {
	repository string
	logger     *log.Entry
	metrics    *metrics.StorageMetrics
}

func (o observer) run(ctx context.Context, operation string, fields log.Fields, fn func() error) error {
	_, err := observe(ctx, o, operation, fields, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func observe[T any](ctx context.Context, o observer, operation string, fields log.Fields, fn func() (T, error)) (T, error) {
	if o.metrics != nil {
		o.metrics.OperationStarted()
	}
	start := time.Now()
	value, err := fn()
	elapsed := time.Since(start)

	result := classify(ctx, err)
	if o.metrics != nil {
		o.metrics.RecordOperation(o.repository, operation, result, elapsed)
	}

	entry := o.logger.WithFields(fields).WithFields(log.Fields{
		"operation":   operation,
		"result":      result,
		"duration_ms": elapsed.Milliseconds(),
	})
	switch result {
	case metrics.ResultOK, metrics.ResultNotFound:
		entry.Debug("storage operation finished")
	case metrics.ResultInvalid:
		entry.WithError(err).Warn("storage operation rejected")
	default:
		entry.WithError(err).Error("storage operation failed")
	}

	return value, err
}

func classify(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case domain.IsNotFound(err):
		return metrics.ResultNotFound
	case domain.IsValidationError(err):
		return metrics.ResultInvalid
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		return metrics.ResultCanceled
	default:
		return metrics.ResultError
	}
}
