package memory

import (
	"context"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type customFieldRepositoryInMemory struct {
	store *Store
}

func (r *customFieldRepositoryInMemory) Create(_ context.Context, field domain.OrderCustomField) error {
	if err := field.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOrderLocked("insert order custom field", field.OrderID); err != nil {
		return err
	}

	s.nextCustomFieldID++
	now := s.now()
	field.ID = s.nextCustomFieldID
	field.CreatedAt = now
	field.UpdatedAt = now
	s.customFields = append(s.customFields, field)
	return nil
}

func (r *customFieldRepositoryInMemory) UpdateAnswer(_ context.Context, orderID, customFieldsID int64, answer string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.customFields {
		f := &s.customFields[i]
		if f.OrderID == orderID && f.CustomFieldsID == customFieldsID {
			f.CustomAnswer = answer
			f.UpdatedAt = now
		}
	}
	return nil
}

func (r *customFieldRepositoryInMemory) ListByOrderID(_ context.Context, orderID int64) ([]domain.OrderCustomField, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterRows(s.customFields, func(f domain.OrderCustomField) bool { return f.OrderID == orderID }), nil
}

func (r *customFieldRepositoryInMemory) DeleteByOrderID(_ context.Context, orderID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customFields = removeByOrder(s.customFields, orderID, func(f domain.OrderCustomField) int64 { return f.OrderID })
	return nil
}

var _ domain.OrderCustomFieldRepository = (*customFieldRepositoryInMemory)(nil)
