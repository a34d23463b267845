package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type batchRepository struct {
	db *gorm.DB
}

func (r *batchRepository) Create(ctx context.Context, orderID int64, batchID string) error {
	if orderID <= 0 {
		return domain.ErrOrderIDRequired
	}

	db, cancel := session(ctx, r.db)
	defer cancel()

	return transaction(db, "insert order batch", func(tx *gorm.DB) error {
		if err := requireOrder(tx, "insert order batch", orderID); err != nil {
			return err
		}
		if err := tx.Create(&batchModel{OrderID: orderID, BatchID: batchID}).Error; err != nil {
			return storageError("insert order batch", err)
		}
		return nil
	})
}

func (r *batchRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderBatch, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []batchModel
	if err := db.Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError("list order batches", err)
	}
	return convertAll[domain.OrderBatch](rows)
}

func (r *batchRepository) Update(ctx context.Context, orderID int64, batchID string) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	err := db.Model(&batchModel{}).Where("order_id = ?", orderID).
		Updates(map[string]any{"batch_id": batchID, "updated_at": time.Now()}).Error
	if err != nil {
		return storageError("update order batch", err)
	}
	return nil
}

func (r *batchRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	if err := db.Where("order_id = ?", orderID).Delete(&batchModel{}).Error; err != nil {
		return storageError("delete order batch", err)
	}
	return nil
}

var _ domain.OrderBatchRepository = (*batchRepository)(nil)
