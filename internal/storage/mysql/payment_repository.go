package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

var paymentUpdateColumns = []string{
	"vendor_id", "payment_method", "payment_no", "payment_date", "status", "extra_data", "updated_at",
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) Create(ctx context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	row, err := convert[paymentModel](payment)
	if err != nil {
		return err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()

	return transaction(db, "insert order payment", func(tx *gorm.DB) error {
		if err := requireOrder(tx, "insert order payment", payment.OrderID); err != nil {
			return err
		}
		if err := requireNoRow(tx, "insert order payment", &paymentModel{}, payment.OrderID); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return storageError("insert order payment", err)
		}
		return nil
	})
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderPayment, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var row paymentModel
	if err := db.Where("order_id = ?", orderID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderPayment{}, domain.ErrPaymentNotFound
		}
		return domain.OrderPayment{}, storageError("select order payment", err)
	}
	return convert[domain.OrderPayment](row)
}

func (r *paymentRepository) Update(ctx context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	row, err := convert[paymentModel](payment)
	if err != nil {
		return err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()
	err = db.Model(&paymentModel{}).Where("order_id = ?", payment.OrderID).Select(paymentUpdateColumns).Updates(&row).Error
	if err != nil {
		return storageError("update order payment", err)
	}
	return nil
}

func (r *paymentRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	if err := db.Where("order_id = ?", orderID).Delete(&paymentModel{}).Error; err != nil {
		return storageError("delete order payment", err)
	}
	return nil
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return r.find(ctx, "list payments by status", "status = ?", int(status))
}

func (r *paymentRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return r.find(ctx, "list order payments by status", "order_id = ? AND status = ?", orderID, int(status))
}

func (r *paymentRepository) find(ctx context.Context, op, query string, args ...any) ([]domain.OrderPayment, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []paymentModel
	if err := db.Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError(op, err)
	}
	return convertAll[domain.OrderPayment](rows)
}

var _ domain.OrderPaymentRepository = (*paymentRepository)(nil)
