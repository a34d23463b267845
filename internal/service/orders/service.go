// Package orders собирает заказ из всех таблиц и удаляет его целиком.
package orders

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// Details содержит заказ со всеми дочерними записями. Payment и Logistics равны nil,
// если соответствующей записи нет.
type Details struct {
	Order        domain.Order
	Products     []domain.OrderProduct
	Payment      *domain.OrderPayment
	Logistics    *domain.OrderLogistics
	Batches      []domain.OrderBatch
	CustomFields []domain.OrderCustomField
}

// Service работает с заказом как с единым целым поверх репозиториев таблиц.
type Service struct {
	repos  domain.Repositories
	logger *log.Entry
}

// NewService создаёт сервис поверх набора репозиториев.
func NewService(repos domain.Repositories, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "orders")
	}
	return &Service{repos: repos, logger: logger}
}

// Details читает заказ и все его дочерние записи.
func (s *Service) Details(ctx context.Context, orderID int64) (Details, error) {
	order, err := s.repos.Orders.GetByID(ctx, orderID)
	if err != nil {
		return Details{}, err
	}
	return s.collect(ctx, order)
}

// StoreDetails работает как Details, но только для заказов магазина storeID.
func (s *Service) StoreDetails(ctx context.Context, orderID, storeID int64) (Details, error) {
	order, err := s.repos.Orders.GetByIDAndStoreID(ctx, orderID, storeID)
	if err != nil {
		return Details{}, err
	}
	return s.collect(ctx, order)
}

func (s *Service) collect(ctx context.Context, order domain.Order) (Details, error) {
	details := Details{Order: order}
	var err error

	if details.Products, err = s.repos.Products.ListByOrderID(ctx, order.ID); err != nil {
		return Details{}, fmt.Errorf("load products: %w", err)
	}

	payment, err := s.repos.Payments.GetByOrderID(ctx, order.ID)
	switch {
	case err == nil:
		details.Payment = &payment
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return Details{}, fmt.Errorf("load payment: %w", err)
	}

	logistics, err := s.repos.Logistics.GetByOrderID(ctx, order.ID)
	switch {
	case err == nil:
		details.Logistics = &logistics
	case !errors.Is(err, domain.ErrLogisticsNotFound):
		return Details{}, fmt.Errorf("load logistics: %w", err)
	}

	if details.Batches, err = s.repos.Batches.ListByOrderID(ctx, order.ID); err != nil {
		return Details{}, fmt.Errorf("load batches: %w", err)
	}
	if details.CustomFields, err = s.repos.CustomFields.ListByOrderID(ctx, order.ID); err != nil {
		return Details{}, fmt.Errorf("load custom fields: %w", err)
	}

	return details, nil
}

// ListStoreOrders возвращает заказы магазина в статусе status.
func (s *Service) ListStoreOrders(ctx context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidOrderStatus
	}
	return s.repos.Orders.ListByStoreAndStatus(ctx, storeID, status)
}

// Purge удаляет дочерние записи по таблицам, затем сам заказ. Операция не
// атомарна: при ошибке часть таблиц уже очищена, повторный вызов её завершит.
func (s *Service) Purge(ctx context.Context, orderID int64) error {
	steps := []struct {
		table string
		fn    func(context.Context, int64) error
	}{
		{"products", s.repos.Products.DeleteByOrderID},
		{"payment", s.repos.Payments.DeleteByOrderID},
		{"logistics", s.repos.Logistics.DeleteByOrderID},
		{"batch", s.repos.Batches.DeleteByOrderID},
		{"custom_fields", s.repos.CustomFields.DeleteByOrderID},
		{"order", s.repos.Orders.Delete},
	}

	for _, step := range steps {
		if err := step.fn(ctx, orderID); err != nil {
			s.logger.WithError(err).WithFields(log.Fields{
				"order_id": orderID,
				"table":    step.table,
			}).Error("purge order interrupted")
			return fmt.Errorf("purge %s: %w", step.table, err)
		}
	}

	s.logger.WithField("order_id", orderID).Info("order purged")
	return nil
}
