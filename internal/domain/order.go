package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus: код статуса заказа в ministore_orders.status.
// Переходы между статусами не валидируются: правила задаёт интегрирующее приложение.
type OrderStatus int

const (
	// OrderStatusCancel: заказ отменён.
	OrderStatusCancel OrderStatus = 0
	// OrderStatusEstablish: заказ оформлен.
	OrderStatusEstablish OrderStatus = 1
)

var orderStatuses = newStatusDictionary(
	"orders.order_confirm",
	statusEntry[OrderStatus]{OrderStatusCancel, "orders.order_cancel"},
	statusEntry[OrderStatus]{OrderStatusEstablish, "orders.order_confirm"},
)

// Label возвращает ключ перевода статуса. Для неизвестного кода
// возвращается ключ статуса "оформлен".
func (s OrderStatus) Label() string { return orderStatuses.label(s) }

// IsValid сообщает, входит ли код в справочник.
func (s OrderStatus) IsValid() bool { return orderStatuses.valid(s) }

// OrderStatuses возвращает все допустимые коды статуса заказа.
func OrderStatuses() []OrderStatus { return orderStatuses.statuses() }

// OrderStatusLabels возвращает копию справочника код -> ключ перевода.
func OrderStatusLabels() map[OrderStatus]string { return orderStatuses.labelMap() }

// Order описывает шапку заказа мини-магазина.
// Все дочерние записи ссылаются на ID через order_id.
type Order struct {
	ID                  int64
	StoreID             int64
	MMID                int64 // идентификатор участника, 0 для гостевого заказа
	HashCode            string
	TotalAmount         decimal.Decimal
	Subtotal            decimal.Decimal
	ShippingDeliveryFee decimal.Decimal
	DeliveryFee         decimal.Decimal
	OrderDeliveryFee    decimal.Decimal
	Discount            decimal.Decimal
	DiscountInfo        string
	Coupon              string
	PayerName           string
	PayerMobile         string
	PayerPhone          string
	PayerEmail          string
	Remark              string
	CustomFields        string
	SystemRtnMsg        string
	UserComment         string
	IPAddress           string
	UserAgent           string
	Status              OrderStatus
	Currency            string
	PickingUpAt         *time.Time
	ShippedAt           *time.Time
	DeletedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate проверяет поля, без которых запись нельзя сохранить.
func (o *Order) Validate() error {
	if o.StoreID <= 0 {
		return ErrStoreIDRequired
	}
	if !o.Status.IsValid() {
		return ErrInvalidOrderStatus
	}
	return nil
}
