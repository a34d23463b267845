package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type batchRepository struct {
	db *sql.DB
}

// NewOrderBatchRepository создаёт PostgreSQL-реализацию OrderBatchRepository.
func NewOrderBatchRepository(store *Store) domain.OrderBatchRepository {
	return &batchRepository{db: store.DB()}
}

func (r *batchRepository) Create(ctx context.Context, orderID int64, batchID string) error {
	if orderID <= 0 {
		return domain.ErrOrderIDRequired
	}
	_, err := execStatement(ctx, r.db, "insert order batch",
		insertSQL("ministore_order_batch", []string{"order_id", "batch_id"}, 1, ""), orderID, batchID)
	return err
}

func (r *batchRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderBatch, error) {
	return queryList(ctx, r.db, "list order batches", scanBatch, `
		SELECT id, order_id, batch_id, created_at, updated_at
		FROM ministore_order_batch
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
}

func (r *batchRepository) Update(ctx context.Context, orderID int64, batchID string) error {
	_, err := execStatement(ctx, r.db, "update order batch", `
		UPDATE ministore_order_batch
		SET batch_id = $1, updated_at = NOW()
		WHERE order_id = $2
	`, batchID, orderID)
	return err
}

func (r *batchRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	_, err := execStatement(ctx, r.db, "delete order batch",
		`DELETE FROM ministore_order_batch WHERE order_id = $1`, orderID)
	return err
}

func scanBatch(row rowScanner) (domain.OrderBatch, error) {
	var b domain.OrderBatch
	err := row.Scan(&b.ID, &b.OrderID, &b.BatchID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

var _ domain.OrderBatchRepository = (*batchRepository)(nil)
