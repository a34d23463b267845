package memory

import (
	"context"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type paymentRepositoryInMemory struct {
	store *Store
}

// Create допускает не больше одной оплаты на заказ.
func (r *paymentRepositoryInMemory) Create(_ context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOrderLocked("insert order payment", payment.OrderID); err != nil {
		return err
	}
	for _, p := range s.payments {
		if p.OrderID == payment.OrderID {
			return domain.NewStorageError("insert order payment", domain.ErrDuplicateRecord)
		}
	}

	s.nextPaymentID++
	now := s.now()
	payment.ID = s.nextPaymentID
	payment.CreatedAt = now
	payment.UpdatedAt = now
	s.payments = append(s.payments, detachPayment(payment))
	return nil
}

func (r *paymentRepositoryInMemory) GetByOrderID(_ context.Context, orderID int64) (domain.OrderPayment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.OrderID == orderID {
			return detachPayment(p), nil
		}
	}
	return domain.OrderPayment{}, domain.ErrPaymentNotFound
}

func (r *paymentRepositoryInMemory) Update(_ context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, current := range s.payments {
		if current.OrderID != payment.OrderID {
			continue
		}
		payment.ID = current.ID
		payment.CreatedAt = current.CreatedAt
		payment.UpdatedAt = s.now()
		s.payments[i] = detachPayment(payment)
	}
	return nil
}

func (r *paymentRepositoryInMemory) DeleteByOrderID(_ context.Context, orderID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = removeByOrder(s.payments, orderID, func(p domain.OrderPayment) int64 { return p.OrderID })
	return nil
}

func (r *paymentRepositoryInMemory) ListByStatus(_ context.Context, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return detachAll(filterRows(s.payments, func(p domain.OrderPayment) bool { return p.Status == status }), detachPayment), nil
}

func (r *paymentRepositoryInMemory) ListByOrderIDAndStatus(_ context.Context, orderID int64, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := filterRows(s.payments, func(p domain.OrderPayment) bool {
		return p.OrderID == orderID && p.Status == status
	})
	return detachAll(rows, detachPayment), nil
}

var _ domain.OrderPaymentRepository = (*paymentRepositoryInMemory)(nil)
