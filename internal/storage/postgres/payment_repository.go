package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const paymentsTable = "ministore_order_payment"

var (
	paymentColumns = []string{
		"order_id", "vendor_id", "payment_method", "payment_no", "payment_date", "status", "extra_data",
	}
	paymentSelectColumns = withTimestamps(paymentColumns)
	paymentUpdateColumns = paymentColumns[1:]
)

type paymentRepository struct {
	db *sql.DB
}

// NewOrderPaymentRepository создаёт PostgreSQL-реализацию OrderPaymentRepository.
func NewOrderPaymentRepository(store *Store) domain.OrderPaymentRepository {
	return &paymentRepository{db: store.DB()}
}

func (r *paymentRepository) Create(ctx context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	_, err := execStatement(ctx, r.db, "insert order payment",
		insertSQL(paymentsTable, paymentColumns, 1, ""), paymentArgs(payment)...)
	return err
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderPayment, error) {
	return queryOne(ctx, r.db, "select order payment", domain.ErrPaymentNotFound, scanPayment,
		selectSQL(paymentsTable, paymentSelectColumns, "order_id"), orderID)
}

func (r *paymentRepository) Update(ctx context.Context, payment domain.OrderPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	args := append(paymentArgs(payment)[1:], payment.OrderID)
	_, err := execStatement(ctx, r.db, "update order payment",
		updateSQL(paymentsTable, paymentUpdateColumns, "order_id"), args...)
	return err
}

func (r *paymentRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	_, err := execStatement(ctx, r.db, "delete order payment",
		`DELETE FROM ministore_order_payment WHERE order_id = $1`, orderID)
	return err
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return queryList(ctx, r.db, "list payments by status", scanPayment,
		selectSQL(paymentsTable, paymentSelectColumns, "status"), int(status))
}

func (r *paymentRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return queryList(ctx, r.db, "list order payments by status", scanPayment,
		selectSQL(paymentsTable, paymentSelectColumns, "order_id", "status"), orderID, int(status))
}

func paymentArgs(p domain.OrderPayment) []any {
	return []any{p.OrderID, p.VendorID, p.PaymentMethod, p.PaymentNo, p.PaymentDate, int(p.Status), p.ExtraData}
}

func scanPayment(row rowScanner) (domain.OrderPayment, error) {
	var (
		p      domain.OrderPayment
		status int
	)
	err := row.Scan(
		&p.ID,
		&p.OrderID, &p.VendorID, &p.PaymentMethod, &p.PaymentNo, &p.PaymentDate, &status, &p.ExtraData,
		&p.CreatedAt, &p.UpdatedAt,
	)
	p.Status = domain.PaymentStatus(status)
	return p, err
}

var _ domain.OrderPaymentRepository = (*paymentRepository)(nil)
