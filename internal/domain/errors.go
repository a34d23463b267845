package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound возвращается, если заказ не найден, в том числе при
	// попытке записать дочернюю запись для несуществующего заказа.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPaymentNotFound: у заказа нет записи об оплате.
	ErrPaymentNotFound = errors.New("order payment not found")
	// ErrLogisticsNotFound: у заказа нет записи о доставке.
	ErrLogisticsNotFound = errors.New("order logistics not found")
	// ErrDuplicateRecord: нарушено ограничение уникальности.
	ErrDuplicateRecord = errors.New("duplicate record")
	// Ошибка отсутствующего идентификатора заказа в дочерних записях.
	ErrOrderIDRequired = errors.New("order_id is required")
	// Ошибка отсутствующего идентификатора магазина.
	ErrStoreIDRequired = errors.New("store_id is required")
	// Ошибка отрицательного количества товара в позиции.
	ErrQuantityNegative = errors.New("quantity must be non-negative")

	// Коды статуса вне справочника.
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
	ErrInvalidLogisticsStatus = errors.New("invalid logistics status")
)

// StorageError оборачивает сбой хранилища: потерю соединения, нарушение
// ограничений, некорректный запрос. Исходная ошибка доступна через errors.Unwrap.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError создаёт StorageError для операции op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage: %s", e.Op)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError проверяет, вызвана ли ошибка сбоем хранилища.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsNotFound проверяет, сообщает ли ошибка об отсутствии записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrLogisticsNotFound)
}

// IsValidationError проверяет, отклонена ли запись до обращения к хранилищу.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrOrderIDRequired,
		ErrStoreIDRequired,
		ErrQuantityNegative,
		ErrInvalidOrderStatus,
		ErrInvalidPaymentStatus,
		ErrInvalidLogisticsStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
