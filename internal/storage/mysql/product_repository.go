package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// productBatchSize держит многострочный INSERT в пределах 65535 параметров.
const productBatchSize = 65535 / 18

var productUpdateColumns = []string{
	"product_id", "specification_id", "main_spec_id", "sub_spec_id", "title", "image", "price",
	"quantity", "detail", "google_category", "primary_spec", "sub_spec", "conditions",
	"availability", "link", "updated_at",
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) Create(ctx context.Context, product domain.OrderProduct) error {
	return r.CreateMany(ctx, []domain.OrderProduct{product})
}

func (r *productRepository) CreateMany(ctx context.Context, products []domain.OrderProduct) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return fmt.Errorf("product #%d: %w", i, err)
		}
	}
	rows, err := convertAll[productModel](products)
	if err != nil {
		return err
	}
	orderIDs := make(map[int64]struct{})
	for i := range rows {
		rows[i].ID = 0
		orderIDs[rows[i].OrderID] = struct{}{}
	}

	db, cancel := session(ctx, r.db)
	defer cancel()

	return transaction(db, "insert order products", func(tx *gorm.DB) error {
		for orderID := range orderIDs {
			if err := requireOrder(tx, "insert order products", orderID); err != nil {
				return err
			}
		}
		if err := tx.CreateInBatches(&rows, productBatchSize).Error; err != nil {
			return storageError("bulk insert order products", err)
		}
		return nil
	})
}

func (r *productRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []productModel
	if err := db.Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, storageError("list order products", err)
	}
	return convertAll[domain.OrderProduct](rows)
}

func (r *productRepository) Update(ctx context.Context, product domain.OrderProduct) error {
	if product.Quantity < 0 {
		return domain.ErrQuantityNegative
	}
	row, err := convert[productModel](product)
	if err != nil {
		return err
	}

	db, cancel := session(ctx, r.db)
	defer cancel()
	err = db.Model(&productModel{}).Where("id = ?", product.ID).Select(productUpdateColumns).Updates(&row).Error
	if err != nil {
		return storageError("update order product", err)
	}
	return nil
}

func (r *productRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	if err := db.Where("order_id = ?", orderID).Delete(&productModel{}).Error; err != nil {
		return storageError("delete order products", err)
	}
	return nil
}

var _ domain.OrderProductRepository = (*productRepository)(nil)
