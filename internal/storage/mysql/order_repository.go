package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

var orderUpdateColumns = []string{
	"store_id", "mmid", "hash_code", "total_amount", "subtotal", "shipping_delivery_fee",
	"delivery_fee", "order_delivery_fee", "discount", "discount_info", "coupon", "payer_name",
	"payer_mobile", "payer_phone", "payer_email", "remark", "custom_fields", "system_rtnmsg",
	"user_comment", "ip_address", "user_agent", "status", "currency", "picking_up_at",
	"shipped_at", "deleted_at", "updated_at",
}

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	if err := order.Validate(); err != nil {
		return 0, err
	}
	row, err := convert[orderModel](order)
	if err != nil {
		return 0, err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()
	if err := db.Create(&row).Error; err != nil {
		return 0, storageError("insert order", err)
	}
	return row.ID, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	return r.take(ctx, "select order", "id = ?", id)
}

func (r *orderRepository) GetByIDAndStoreID(ctx context.Context, id, storeID int64) (domain.Order, error) {
	return r.take(ctx, "select store order", "id = ? AND store_id = ?", id, storeID)
}

func (r *orderRepository) ListByStoreAndPayerEmail(ctx context.Context, storeID int64, payerEmail string) ([]domain.Order, error) {
	return r.find(ctx, "list orders by payer email", "store_id = ? AND payer_email = ?", storeID, payerEmail)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return r.find(ctx, "list orders by status", "status = ?", int(status))
}

func (r *orderRepository) ListByStoreAndStatus(ctx context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error) {
	return r.find(ctx, "list store orders", "store_id = ? AND status = ?", storeID, int(status))
}

func (r *orderRepository) Update(ctx context.Context, order domain.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	row, err := convert[orderModel](order)
	if err != nil {
		return err
	}

	db, cancel := session(ctx, r.db)
	defer cancel()
	err = db.Model(&orderModel{}).Where("id = ?", order.ID).Select(orderUpdateColumns).Updates(&row).Error
	if err != nil {
		return storageError("update order", err)
	}
	return nil
}

// Delete удаляет заказ вместе с дочерними записями одной транзакцией:
// в исходной схеме нет каскадных внешних ключей.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		children := []any{&productModel{}, &paymentModel{}, &logisticsModel{}, &batchModel{}, &customFieldModel{}}
		for _, child := range children {
			if err := tx.Where("order_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&orderModel{}).Error
	})
	if err != nil {
		return storageError("delete order", err)
	}
	return nil
}

func (r *orderRepository) take(ctx context.Context, op, query string, args ...any) (domain.Order, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var row orderModel
	if err := db.Where(query, args...).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, storageError(op, err)
	}
	return convert[domain.Order](row)
}

func (r *orderRepository) find(ctx context.Context, op, query string, args ...any) ([]domain.Order, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []orderModel
	if err := db.Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError(op, err)
	}
	return convertAll[domain.Order](rows)
}

var _ domain.OrderRepository = (*orderRepository)(nil)
