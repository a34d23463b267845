package domain

import "time"

// PaymentStatus: код статуса оплаты в ministore_order_payment.status.
type PaymentStatus int

const (
	PaymentStatusUnpaid            PaymentStatus = 0
	PaymentStatusPaid              PaymentStatus = 1
	PaymentStatusFailed            PaymentStatus = 2
	PaymentStatusRefunding         PaymentStatus = 3
	PaymentStatusRefunded          PaymentStatus = 4
	PaymentStatusNoPaymentRequired PaymentStatus = 5
)

var paymentStatuses = newStatusDictionary(
	LabelUnknownStatus,
	statusEntry[PaymentStatus]{PaymentStatusUnpaid, "orders.unpaid"},
	statusEntry[PaymentStatus]{PaymentStatusPaid, "orders.paid"},
	statusEntry[PaymentStatus]{PaymentStatusFailed, "orders.pay_unsuccess"},
	statusEntry[PaymentStatus]{PaymentStatusRefunding, "orders.refunding"},
	statusEntry[PaymentStatus]{PaymentStatusRefunded, "orders.refunded"},
	statusEntry[PaymentStatus]{PaymentStatusNoPaymentRequired, "orders.no_payment_required"},
)

// Label возвращает ключ перевода или LabelUnknownStatus.
func (s PaymentStatus) Label() string { return paymentStatuses.label(s) }

// IsValid сообщает, входит ли код в справочник.
func (s PaymentStatus) IsValid() bool { return paymentStatuses.valid(s) }

// PaymentStatuses возвращает все допустимые коды статуса оплаты.
func PaymentStatuses() []PaymentStatus { return paymentStatuses.statuses() }

// PaymentStatusLabels возвращает копию справочника код -> ключ перевода.
func PaymentStatusLabels() map[PaymentStatus]string { return paymentStatuses.labelMap() }

// OrderPayment описывает оплату заказа. На заказ приходится не больше одной записи.
type OrderPayment struct {
	ID            int64
	OrderID       int64
	VendorID      int64
	PaymentMethod string
	PaymentNo     string
	PaymentDate   *time.Time
	Status        PaymentStatus
	ExtraData     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate проверяет поля оплаты перед записью.
func (p *OrderPayment) Validate() error {
	switch {
	case p.OrderID <= 0:
		return ErrOrderIDRequired
	case !p.Status.IsValid():
		return ErrInvalidPaymentStatus
	}
	return nil
}
