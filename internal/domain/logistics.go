package domain

import "time"

// LogisticsStatus: код статуса доставки в ministore_order_logistics.status.
type LogisticsStatus int

const (
	LogisticsStatusPending         LogisticsStatus = 0
	LogisticsStatusShipped         LogisticsStatus = 1
	LogisticsStatusReceived        LogisticsStatus = 2
	LogisticsStatusDigitalDelivery LogisticsStatus = 3
)

var logisticsStatuses = newStatusDictionary(
	LabelUnknownStatus,
	statusEntry[LogisticsStatus]{LogisticsStatusPending, "orders.not_ship"},
	statusEntry[LogisticsStatus]{LogisticsStatusShipped, "orders.shipped"},
	statusEntry[LogisticsStatus]{LogisticsStatusReceived, "orders.picked_up"},
	statusEntry[LogisticsStatus]{LogisticsStatusDigitalDelivery, "orders.digital_delivery"},
)

// Label возвращает ключ перевода или LabelUnknownStatus.
func (s LogisticsStatus) Label() string { return logisticsStatuses.label(s) }

// IsValid сообщает, входит ли код в справочник.
func (s LogisticsStatus) IsValid() bool { return logisticsStatuses.valid(s) }

// LogisticsStatuses возвращает все допустимые коды статуса доставки.
func LogisticsStatuses() []LogisticsStatus { return logisticsStatuses.statuses() }

// LogisticsStatusLabels возвращает копию справочника код -> ключ перевода.
func LogisticsStatusLabels() map[LogisticsStatus]string { return logisticsStatuses.labelMap() }

// OrderLogistics описывает отправку заказа: отправителя, получателя,
// самовывоз из магазина у дома (cvs_*) и курьерскую доставку (home_*).
type OrderLogistics struct {
	ID                int64
	OrderID           int64
	VendorLogistics   int64
	LogisticsMethod   string
	LogisticsNo       string
	LogisticsType     string
	DeliveryDate      *time.Time
	DeliveryNo        string
	RecipientName     string
	RecipientMobile   string
	RecipientPhone    string
	RecipientZipCode  string
	RecipientAddress  string
	SenderName        string
	SenderMobile      string
	SenderPhone       string
	SenderZipCode     string
	SenderAddress     string
	CVSID             string
	CVSName           string
	CVSAddress        string
	CVSDeliveryType   string
	HomeTemperature   string
	HomeDistance      string
	HomeSpecification string
	HomePickupTime    string
	HomeDeliveryTime  string
	CashOnDelivery    bool
	ExtraData         string
	Status            LogisticsStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate проверяет поля доставки перед записью.
func (l *OrderLogistics) Validate() error {
	switch {
	case l.OrderID <= 0:
		return ErrOrderIDRequired
	case !l.Status.IsValid():
		return ErrInvalidLogisticsStatus
	}
	return nil
}
