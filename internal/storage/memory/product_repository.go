package memory

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type productRepositoryInMemory struct {
	store *Store
}

func (r *productRepositoryInMemory) Create(ctx context.Context, product domain.OrderProduct) error {
	return r.CreateMany(ctx, []domain.OrderProduct{product})
}

// CreateMany сначала проверяет все позиции и только потом вставляет их,
// поэтому при ошибке хранилище не меняется.
func (r *productRepositoryInMemory) CreateMany(_ context.Context, products []domain.OrderProduct) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return fmt.Errorf("product #%d: %w", i, err)
		}
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if err := s.requireOrderLocked("insert order products", p.OrderID); err != nil {
			return err
		}
	}

	now := s.now()
	for _, p := range products {
		s.nextProductID++
		p.ID = s.nextProductID
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products = append(s.products, p)
	}
	return nil
}

func (r *productRepositoryInMemory) ListByOrderID(_ context.Context, orderID int64) ([]domain.OrderProduct, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterRows(s.products, func(p domain.OrderProduct) bool { return p.OrderID == orderID }), nil
}

func (r *productRepositoryInMemory) Update(_ context.Context, product domain.OrderProduct) error {
	if product.Quantity < 0 {
		return domain.ErrQuantityNegative
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, current := range s.products {
		if current.ID != product.ID {
			continue
		}
		product.OrderID = current.OrderID
		product.CreatedAt = current.CreatedAt
		product.UpdatedAt = s.now()
		s.products[i] = product
		return nil
	}
	return nil
}

func (r *productRepositoryInMemory) DeleteByOrderID(_ context.Context, orderID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = removeByOrder(s.products, orderID, func(p domain.OrderProduct) int64 { return p.OrderID })
	return nil
}

var _ domain.OrderProductRepository = (*productRepositoryInMemory)(nil)
