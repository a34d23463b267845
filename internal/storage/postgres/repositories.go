package postgres

import "github.com/vladislavdragonenkov/ministore/internal/domain"

// NewRepositories создаёт репозитории всех таблиц поверх одного Store.
func NewRepositories(store *Store) domain.Repositories {
	return domain.Repositories{
		Orders:       NewOrderRepository(store),
		Products:     NewOrderProductRepository(store),
		Payments:     NewOrderPaymentRepository(store),
		Logistics:    NewOrderLogisticsRepository(store),
		Batches:      NewOrderBatchRepository(store),
		CustomFields: NewOrderCustomFieldRepository(store),
	}
}
