package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const productsTable = "ministore_order_products"

var (
	productColumns = []string{
		"order_id", "product_id", "specification_id", "main_spec_id", "sub_spec_id", "title",
		"image", "price", "quantity", "detail", "google_category", "primary_spec", "sub_spec",
		"conditions", "availability", "link",
	}
	productSelectColumns = withTimestamps(productColumns)
	// order_id у позиции не меняется.
	productUpdateColumns = productColumns[1:]
)

type productRepository struct {
	db *sql.DB
}

// NewOrderProductRepository создаёт PostgreSQL-реализацию OrderProductRepository.
func NewOrderProductRepository(store *Store) domain.OrderProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(ctx context.Context, product domain.OrderProduct) error {
	if err := product.Validate(); err != nil {
		return err
	}
	_, err := execStatement(ctx, r.db, "insert order product",
		insertSQL(productsTable, productColumns, 1, ""), productArgs(product)...)
	return err
}

// CreateMany вставляет позиции многострочным INSERT внутри транзакции.
// Если позиций больше, чем помещается в лимит параметров, они делятся на
// несколько запросов в той же транзакции.
func (r *productRepository) CreateMany(ctx context.Context, products []domain.OrderProduct) (err error) {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return fmt.Errorf("product #%d: %w", i, err)
		}
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("begin bulk insert", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	chunk := maxBindParams / len(productColumns)
	for start := 0; start < len(products); start += chunk {
		end := min(start+chunk, len(products))

		args := make([]any, 0, (end-start)*len(productColumns))
		for _, p := range products[start:end] {
			args = append(args, productArgs(p)...)
		}
		if _, err = tx.ExecContext(ctx, insertSQL(productsTable, productColumns, end-start, ""), args...); err != nil {
			return storageError("bulk insert order products", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return storageError("commit bulk insert", err)
	}
	return nil
}

func (r *productRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	return queryList(ctx, r.db, "list order products", scanProduct,
		selectSQL(productsTable, productSelectColumns, "order_id"), orderID)
}

func (r *productRepository) Update(ctx context.Context, product domain.OrderProduct) error {
	if product.Quantity < 0 {
		return domain.ErrQuantityNegative
	}
	args := append(productArgs(product)[1:], product.ID)
	_, err := execStatement(ctx, r.db, "update order product",
		updateSQL(productsTable, productUpdateColumns, "id"), args...)
	return err
}

func (r *productRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	_, err := execStatement(ctx, r.db, "delete order products",
		`DELETE FROM ministore_order_products WHERE order_id = $1`, orderID)
	return err
}

func productArgs(p domain.OrderProduct) []any {
	return []any{
		p.OrderID, p.ProductID, p.SpecificationID, p.MainSpecID, p.SubSpecID, p.Title,
		p.Image, p.Price, p.Quantity, p.Detail, p.GoogleCategory, p.PrimarySpec, p.SubSpec,
		p.Conditions, p.Availability, p.Link,
	}
}

func scanProduct(row rowScanner) (domain.OrderProduct, error) {
	var p domain.OrderProduct
	err := row.Scan(
		&p.ID,
		&p.OrderID, &p.ProductID, &p.SpecificationID, &p.MainSpecID, &p.SubSpecID, &p.Title,
		&p.Image, &p.Price, &p.Quantity, &p.Detail, &p.GoogleCategory, &p.PrimarySpec, &p.SubSpec,
		&p.Conditions, &p.Availability, &p.Link,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

var _ domain.OrderProductRepository = (*productRepository)(nil)
