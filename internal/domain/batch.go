package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderBatch связывает заказ с идентификатором партии для групповой обработки.
type OrderBatch struct {
	ID        int64
	OrderID   int64
	BatchID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBatchID генерирует идентификатор новой партии.
func NewBatchID() string {
	return uuid.NewString()
}
