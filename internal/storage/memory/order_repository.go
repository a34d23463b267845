package memory

import (
	"context"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// orderRepositoryInMemory реализует OrderRepository в памяти.
type orderRepositoryInMemory struct {
	store *Store
}

func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) (int64, error) {
	if err := order.Validate(); err != nil {
		return 0, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	now := s.now()
	order.ID = s.nextOrderID
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders[order.ID] = detachOrder(order)
	return order.ID, nil
}

func (r *orderRepositoryInMemory) GetByID(_ context.Context, id int64) (domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return detachOrder(order), nil
}

func (r *orderRepositoryInMemory) GetByIDAndStoreID(ctx context.Context, id, storeID int64) (domain.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order.StoreID != storeID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *orderRepositoryInMemory) ListByStoreAndPayerEmail(_ context.Context, storeID int64, payerEmail string) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool {
		return o.StoreID == storeID && o.PayerEmail == payerEmail
	}), nil
}

func (r *orderRepositoryInMemory) ListByStatus(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool { return o.Status == status }), nil
}

func (r *orderRepositoryInMemory) ListByStoreAndStatus(_ context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool {
		return o.StoreID == storeID && o.Status == status
	}), nil
}

func (r *orderRepositoryInMemory) Update(_ context.Context, order domain.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[order.ID]
	if !ok {
		return nil
	}
	order.CreatedAt = current.CreatedAt
	order.UpdatedAt = s.now()
	s.orders[order.ID] = detachOrder(order)
	return nil
}

// Delete удаляет заказ вместе с дочерними записями, как ON DELETE CASCADE.
func (r *orderRepositoryInMemory) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return nil
	}
	delete(s.orders, id)
	s.deleteChildrenLocked(id)
	return nil
}

func (r *orderRepositoryInMemory) list(keep func(domain.Order) bool) []domain.Order {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if keep(order) {
			result = append(result, detachOrder(order))
		}
	}
	sortOrders(result)
	return result
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
