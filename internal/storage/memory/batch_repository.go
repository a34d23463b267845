package memory

import (
	"context"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type batchRepositoryInMemory struct {
	store *Store
}

func (r *batchRepositoryInMemory) Create(_ context.Context, orderID int64, batchID string) error {
	if orderID <= 0 {
		return domain.ErrOrderIDRequired
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOrderLocked("insert order batch", orderID); err != nil {
		return err
	}

	s.nextBatchID++
	now := s.now()
	s.batches = append(s.batches, domain.OrderBatch{
		ID:        s.nextBatchID,
		OrderID:   orderID,
		BatchID:   batchID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

func (r *batchRepositoryInMemory) ListByOrderID(_ context.Context, orderID int64) ([]domain.OrderBatch, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterRows(s.batches, func(b domain.OrderBatch) bool { return b.OrderID == orderID }), nil
}

func (r *batchRepositoryInMemory) Update(_ context.Context, orderID int64, batchID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.batches {
		if s.batches[i].OrderID == orderID {
			s.batches[i].BatchID = batchID
			s.batches[i].UpdatedAt = now
		}
	}
	return nil
}

func (r *batchRepositoryInMemory) DeleteByOrderID(_ context.Context, orderID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = removeByOrder(s.batches, orderID, func(b domain.OrderBatch) int64 { return b.OrderID })
	return nil
}

var _ domain.OrderBatchRepository = (*batchRepositoryInMemory)(nil)
