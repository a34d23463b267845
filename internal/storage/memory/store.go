package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// Store хранит в памяти строки всех таблиц заказа. Один мьютекс
// защищает все таблицы, поэтому проверка существования заказа и вставка
// дочерней записи выполняются атомарно.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	orders       map[int64]domain.Order
	products     []domain.OrderProduct
	payments     []domain.OrderPayment
	logistics    []domain.OrderLogistics
	batches      []domain.OrderBatch
	customFields []domain.OrderCustomField

	nextOrderID       int64
	nextProductID     int64
	nextPaymentID     int64
	nextLogisticsID   int64
	nextBatchID       int64
	nextCustomFieldID int64
}

// NewStore создаёт пустое хранилище для локальной разработки и тестов.
func NewStore() *Store {
	return &Store{
		now:    func() time.Time { return time.Now().UTC() },
		orders: make(map[int64]domain.Order),
	}
}

// NewRepositories создаёт репозитории всех таблиц поверх одного Store.
func NewRepositories(store *Store) domain.Repositories {
	return domain.Repositories{
		Orders:       &orderRepositoryInMemory{store: store},
		Products:     &productRepositoryInMemory{store: store},
		Payments:     &paymentRepositoryInMemory{store: store},
		Logistics:    &logisticsRepositoryInMemory{store: store},
		Batches:      &batchRepositoryInMemory{store: store},
		CustomFields: &customFieldRepositoryInMemory{store: store},
	}
}

// requireOrderLocked повторяет поведение внешнего ключа. Вызывать под s.mu.
func (s *Store) requireOrderLocked(op string, orderID int64) error {
	if _, ok := s.orders[orderID]; !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
	}
	return nil
}

// deleteChildrenLocked удаляет все дочерние записи заказа. Вызывать под s.mu.
func (s *Store) deleteChildrenLocked(orderID int64) {
	s.products = removeByOrder(s.products, orderID, func(p domain.OrderProduct) int64 { return p.OrderID })
	s.payments = removeByOrder(s.payments, orderID, func(p domain.OrderPayment) int64 { return p.OrderID })
	s.logistics = removeByOrder(s.logistics, orderID, func(l domain.OrderLogistics) int64 { return l.OrderID })
	s.batches = removeByOrder(s.batches, orderID, func(b domain.OrderBatch) int64 { return b.OrderID })
	s.customFields = removeByOrder(s.customFields, orderID, func(f domain.OrderCustomField) int64 { return f.OrderID })
}

// filterRows возвращает копии подходящих строк; для пустого результата возвращается пустой срез.
func filterRows[T any](rows []T, keep func(T) bool) []T {
	result := make([]T, 0)
	for _, row := range rows {
		if keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// cloneTime копирует значение по указателю, чтобы хранилище не делило
// время с вызывающим.
func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func detachOrder(o domain.Order) domain.Order {
	o.PickingUpAt = cloneTime(o.PickingUpAt)
	o.ShippedAt = cloneTime(o.ShippedAt)
	o.DeletedAt = cloneTime(o.DeletedAt)
	return o
}

func detachPayment(p domain.OrderPayment) domain.OrderPayment {
	p.PaymentDate = cloneTime(p.PaymentDate)
	return p
}

func detachLogistics(l domain.OrderLogistics) domain.OrderLogistics {
	l.DeliveryDate = cloneTime(l.DeliveryDate)
	return l
}

func detachAll[T any](rows []T, detach func(T) T) []T {
	for i := range rows {
		rows[i] = detach(rows[i])
	}
	return rows
}

func removeByOrder[T any](rows []T, orderID int64, orderOf func(T) int64) []T {
	kept := rows[:0]
	for _, row := range rows {
		if orderOf(row) != orderID {
			kept = append(kept, row)
		}
	}
	clear(rows[len(kept):])
	return kept
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
}
