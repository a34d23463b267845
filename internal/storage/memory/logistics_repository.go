package memory

import (
	"context"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type logisticsRepositoryInMemory struct {
	store *Store
}

func (r *logisticsRepositoryInMemory) Create(_ context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOrderLocked("insert order logistics", logistics.OrderID); err != nil {
		return err
	}
	for _, l := range s.logistics {
		if l.OrderID == logistics.OrderID {
			return domain.NewStorageError("insert order logistics", domain.ErrDuplicateRecord)
		}
	}

	s.nextLogisticsID++
	now := s.now()
	logistics.ID = s.nextLogisticsID
	logistics.CreatedAt = now
	logistics.UpdatedAt = now
	s.logistics = append(s.logistics, detachLogistics(logistics))
	return nil
}

func (r *logisticsRepositoryInMemory) GetByOrderID(_ context.Context, orderID int64) (domain.OrderLogistics, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.logistics {
		if l.OrderID == orderID {
			return detachLogistics(l), nil
		}
	}
	return domain.OrderLogistics{}, domain.ErrLogisticsNotFound
}

func (r *logisticsRepositoryInMemory) Update(_ context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, current := range s.logistics {
		if current.OrderID != logistics.OrderID {
			continue
		}
		logistics.ID = current.ID
		logistics.CreatedAt = current.CreatedAt
		logistics.UpdatedAt = s.now()
		s.logistics[i] = detachLogistics(logistics)
	}
	return nil
}

func (r *logisticsRepositoryInMemory) DeleteByOrderID(_ context.Context, orderID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logistics = removeByOrder(s.logistics, orderID, func(l domain.OrderLogistics) int64 { return l.OrderID })
	return nil
}

func (r *logisticsRepositoryInMemory) ListByStatus(_ context.Context, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return detachAll(filterRows(s.logistics, func(l domain.OrderLogistics) bool { return l.Status == status }), detachLogistics), nil
}

func (r *logisticsRepositoryInMemory) ListByOrderIDAndStatus(_ context.Context, orderID int64, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := filterRows(s.logistics, func(l domain.OrderLogistics) bool {
		return l.OrderID == orderID && l.Status == status
	})
	return detachAll(rows, detachLogistics), nil
}

var _ domain.OrderLogisticsRepository = (*logisticsRepositoryInMemory)(nil)
