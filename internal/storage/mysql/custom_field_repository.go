package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type customFieldRepository struct {
	db *gorm.DB
}

func (r *customFieldRepository) Create(ctx context.Context, field domain.OrderCustomField) error {
	if err := field.Validate(); err != nil {
		return err
	}
	row, err := convert[customFieldModel](field)
	if err != nil {
		return err
	}
	row.ID = 0

	db, cancel := session(ctx, r.db)
	defer cancel()

	return transaction(db, "insert order custom field", func(tx *gorm.DB) error {
		if err := requireOrder(tx, "insert order custom field", field.OrderID); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return storageError("insert order custom field", err)
		}
		return nil
	})
}

func (r *customFieldRepository) UpdateAnswer(ctx context.Context, orderID, customFieldsID int64, answer string) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	err := db.Model(&customFieldModel{}).
		Where("order_id = ? AND custom_fields_id = ?", orderID, customFieldsID).
		Updates(map[string]any{"custom_answer": answer, "updated_at": time.Now()}).Error
	if err != nil {
		return storageError("update custom answer", err)
	}
	return nil
}

func (r *customFieldRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderCustomField, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []customFieldModel
	if err := db.Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError("list order custom fields", err)
	}
	return convertAll[domain.OrderCustomField](rows)
}

func (r *customFieldRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	if err := db.Where("order_id = ?", orderID).Delete(&customFieldModel{}).Error; err != nil {
		return storageError("delete order custom fields", err)
	}
	return nil
}

var _ domain.OrderCustomFieldRepository = (*customFieldRepository)(nil)
