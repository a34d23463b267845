package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProduct описывает позицию заказа. Поля витрины (title, image, price, link)
// копируются на момент оформления и не зависят от каталога.
type OrderProduct struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	SpecificationID int64
	MainSpecID      int64
	SubSpecID       int64
	Title           string
	Image           string
	Price           decimal.Decimal
	Quantity        int
	Detail          string
	GoogleCategory  string
	PrimarySpec     string
	SubSpec         string
	Conditions      string
	Availability    string
	Link            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate проверяет поля позиции перед записью.
func (p *OrderProduct) Validate() error {
	if p.OrderID <= 0 {
		return ErrOrderIDRequired
	}
	if p.Quantity < 0 {
		return ErrQuantityNegative
	}
	return nil
}
