package domain

import "time"

// OrderCustomField хранит ответ покупателя на вопрос магазина при оформлении.
type OrderCustomField struct {
	ID              int64
	OrderID         int64
	CustomFieldsID  int64
	CustomFieldName string
	CustomAnswer    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate проверяет поля ответа перед записью.
func (f *OrderCustomField) Validate() error {
	if f.OrderID <= 0 {
		return ErrOrderIDRequired
	}
	return nil
}
