package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

var logisticsUpdateColumns = []string{
	"vendor_logistics", "logistics_method", "logistics_no", "logistics_type", "delivery_date", "delivery_no",
	"recipient_name", "recipient_mobile", "recipient_phone", "recipient_zip_code", "recipient_address",
	"sender_name", "sender_mobile", "sender_phone", "sender_zip_code", "sender_address",
	"cvs_id", "cvs_name", "cvs_address", "cvs_delivery_type",
	"home_temperature", "home_distance", "home_specification", "home_pickup_time", "home_delivery_time",
	"cash_on_delivery", "extra_data", "status", "updated_at",
}

type logisticsRepository struct {
	db *gorm.DB
}

func (r *logisticsRepository) Create(ctx context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}
	row, err := convert[logisticsModel](logistics)
	if err != nil {
		return err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()

	return transaction(db, "insert order logistics", func(tx *gorm.DB) error {
		if err := requireOrder(tx, "insert order logistics", logistics.OrderID); err != nil {
			return err
		}
		if err := requireNoRow(tx, "insert order logistics", &logisticsModel{}, logistics.OrderID); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return storageError("insert order logistics", err)
		}
		return nil
	})
}

func (r *logisticsRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderLogistics, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var row logisticsModel
	if err := db.Where("order_id = ?", orderID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderLogistics{}, domain.ErrLogisticsNotFound
		}
		return domain.OrderLogistics{}, storageError("select order logistics", err)
	}
	return convert[domain.OrderLogistics](row)
}

func (r *logisticsRepository) Update(ctx context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}
	row, err := convert[logisticsModel](logistics)
	if err != nil {
		return err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()
	err = db.Model(&logisticsModel{}).Where("order_id = ?", logistics.OrderID).Select(logisticsUpdateColumns).Updates(&row).Error
	if err != nil {
		return storageError("update order logistics", err)
	}
	return nil
}

func (r *logisticsRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	if err := db.Where("order_id = ?", orderID).Delete(&logisticsModel{}).Error; err != nil {
		return storageError("delete order logistics", err)
	}
	return nil
}

func (r *logisticsRepository) ListByStatus(ctx context.Context, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return r.find(ctx, "list logistics by status", "status = ?", int(status))
}

func (r *logisticsRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return r.find(ctx, "list order logistics by status", "order_id = ? AND status = ?", orderID, int(status))
}

func (r *logisticsRepository) find(ctx context.Context, op, query string, args ...any) ([]domain.OrderLogistics, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []logisticsModel
	if err := db.Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError(op, err)
	}
	return convertAll[domain.OrderLogistics](rows)
}

var _ domain.OrderLogisticsRepository = (*logisticsRepository)(nil)
