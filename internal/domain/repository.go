package domain

import "context"

// OrderRepository описывает хранилище шапок заказов (ministore_orders).
type OrderRepository interface {
	// Create сохраняет заказ и возвращает присвоенный идентификатор.
	Create(ctx context.Context, order Order) (int64, error)
	// GetByID возвращает заказ или ErrOrderNotFound.
	GetByID(ctx context.Context, id int64) (Order, error)
	// GetByIDAndStoreID возвращает заказ магазина или ErrOrderNotFound.
	GetByIDAndStoreID(ctx context.Context, id, storeID int64) (Order, error)
	ListByStoreAndPayerEmail(ctx context.Context, storeID int64, payerEmail string) ([]Order, error)
	ListByStatus(ctx context.Context, status OrderStatus) ([]Order, error)
	ListByStoreAndStatus(ctx context.Context, storeID int64, status OrderStatus) ([]Order, error)
	// Update перезаписывает изменяемые поля заказа по ID.
	// Отсутствие строки не считается ошибкой.
	Update(ctx context.Context, order Order) error
	// Delete удаляет заказ. Повторное удаление не является ошибкой.
	Delete(ctx context.Context, id int64) error
}

// OrderProductRepository описывает хранилище позиций заказа (ministore_order_products).
type OrderProductRepository interface {
	Create(ctx context.Context, product OrderProduct) error
	// CreateMany вставляет все позиции одной транзакцией: либо все, либо ни одной.
	CreateMany(ctx context.Context, products []OrderProduct) error
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderProduct, error)
	// Update перезаписывает позицию по её ID.
	Update(ctx context.Context, product OrderProduct) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
}

// OrderPaymentRepository описывает хранилище оплат (ministore_order_payment).
type OrderPaymentRepository interface {
	// Create сохраняет оплату; статус по умолчанию PaymentStatusUnpaid.
	Create(ctx context.Context, payment OrderPayment) error
	// GetByOrderID возвращает оплату заказа или ErrPaymentNotFound.
	GetByOrderID(ctx context.Context, orderID int64) (OrderPayment, error)
	// Update перезаписывает оплату по order_id.
	Update(ctx context.Context, payment OrderPayment) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
	ListByStatus(ctx context.Context, status PaymentStatus) ([]OrderPayment, error)
	ListByOrderIDAndStatus(ctx context.Context, orderID int64, status PaymentStatus) ([]OrderPayment, error)
}

// OrderLogisticsRepository описывает хранилище доставок (ministore_order_logistics).
type OrderLogisticsRepository interface {
	// Create сохраняет доставку; статус по умолчанию LogisticsStatusPending.
	Create(ctx context.Context, logistics OrderLogistics) error
	// GetByOrderID возвращает доставку заказа или ErrLogisticsNotFound.
	GetByOrderID(ctx context.Context, orderID int64) (OrderLogistics, error)
	// Update перезаписывает доставку по order_id.
	Update(ctx context.Context, logistics OrderLogistics) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
	ListByStatus(ctx context.Context, status LogisticsStatus) ([]OrderLogistics, error)
	ListByOrderIDAndStatus(ctx context.Context, orderID int64, status LogisticsStatus) ([]OrderLogistics, error)
}

// OrderBatchRepository описывает привязку заказов к партиям (ministore_order_batch).
type OrderBatchRepository interface {
	Create(ctx context.Context, orderID int64, batchID string) error
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderBatch, error)
	// Update меняет batch_id у всех записей заказа.
	Update(ctx context.Context, orderID int64, batchID string) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
}

// OrderCustomFieldRepository описывает ответы на поля магазина (order_custom_fields).
type OrderCustomFieldRepository interface {
	Create(ctx context.Context, field OrderCustomField) error
	// UpdateAnswer меняет ответ по паре (order_id, custom_fields_id).
	UpdateAnswer(ctx context.Context, orderID, customFieldsID int64, answer string) error
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderCustomField, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}

// Repositories собирает репозитории всех таблиц одного хранилища.
type Repositories struct {
	Orders       OrderRepository
	Products     OrderProductRepository
	Payments     OrderPaymentRepository
	Logistics    OrderLogisticsRepository
	Batches      OrderBatchRepository
	CustomFields OrderCustomFieldRepository
}
