package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const ordersTable = "ministore_orders"

var (
	orderColumns = []string{
		"store_id", "mmid", "hash_code", "total_amount", "subtotal", "shipping_delivery_fee",
		"delivery_fee", "order_delivery_fee", "discount", "discount_info", "coupon", "payer_name",
		"payer_mobile", "payer_phone", "payer_email", "remark", "custom_fields", "system_rtnmsg",
		"user_comment", "ip_address", "user_agent", "status", "currency", "picking_up_at",
		"shipped_at", "deleted_at",
	}
	orderSelectColumns = withTimestamps(orderColumns)
)

// withTimestamps возвращает id, колонки и служебные отметки времени в порядке сканирования.
func withTimestamps(columns []string) []string {
	out := make([]string, 0, len(columns)+3)
	out = append(out, "id")
	out = append(out, columns...)
	return append(out, "created_at", "updated_at")
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	if err := order.Validate(); err != nil {
		return 0, err
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, insertSQL(ordersTable, orderColumns, 1, "id"), orderArgs(order)...).Scan(&id)
	if err != nil {
		return 0, storageError("insert order", err)
	}
	return id, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	return queryOne(ctx, r.db, "select order", domain.ErrOrderNotFound, scanOrder,
		selectSQL(ordersTable, orderSelectColumns, "id"), id)
}

func (r *orderRepository) GetByIDAndStoreID(ctx context.Context, id, storeID int64) (domain.Order, error) {
	return queryOne(ctx, r.db, "select store order", domain.ErrOrderNotFound, scanOrder,
		selectSQL(ordersTable, orderSelectColumns, "id", "store_id"), id, storeID)
}

func (r *orderRepository) ListByStoreAndPayerEmail(ctx context.Context, storeID int64, payerEmail string) ([]domain.Order, error) {
	return queryList(ctx, r.db, "list orders by payer email", scanOrder,
		selectSQL(ordersTable, orderSelectColumns, "store_id", "payer_email"), storeID, payerEmail)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return queryList(ctx, r.db, "list orders by status", scanOrder,
		selectSQL(ordersTable, orderSelectColumns, "status"), int(status))
}

func (r *orderRepository) ListByStoreAndStatus(ctx context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error) {
	return queryList(ctx, r.db, "list store orders", scanOrder,
		selectSQL(ordersTable, orderSelectColumns, "store_id", "status"), storeID, int(status))
}

func (r *orderRepository) Update(ctx context.Context, order domain.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	args := append(orderArgs(order), order.ID)
	_, err := execStatement(ctx, r.db, "update order", updateSQL(ordersTable, orderColumns, "id"), args...)
	return err
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	_, err := execStatement(ctx, r.db, "delete order", `DELETE FROM ministore_orders WHERE id = $1`, id)
	return err
}

func orderArgs(o domain.Order) []any {
	return []any{
		o.StoreID, o.MMID, o.HashCode, o.TotalAmount, o.Subtotal, o.ShippingDeliveryFee,
		o.DeliveryFee, o.OrderDeliveryFee, o.Discount, o.DiscountInfo, o.Coupon, o.PayerName,
		o.PayerMobile, o.PayerPhone, o.PayerEmail, o.Remark, o.CustomFields, o.SystemRtnMsg,
		o.UserComment, o.IPAddress, o.UserAgent, int(o.Status), o.Currency, o.PickingUpAt,
		o.ShippedAt, o.DeletedAt,
	}
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o      domain.Order
		status int
	)
	err := row.Scan(
		&o.ID,
		&o.StoreID, &o.MMID, &o.HashCode, &o.TotalAmount, &o.Subtotal, &o.ShippingDeliveryFee,
		&o.DeliveryFee, &o.OrderDeliveryFee, &o.Discount, &o.DiscountInfo, &o.Coupon, &o.PayerName,
		&o.PayerMobile, &o.PayerPhone, &o.PayerEmail, &o.Remark, &o.CustomFields, &o.SystemRtnMsg,
		&o.UserComment, &o.IPAddress, &o.UserAgent, &status, &o.Currency, &o.PickingUpAt,
		&o.ShippedAt, &o.DeletedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	o.Status = domain.OrderStatus(status)
	return o, err
}

var _ domain.OrderRepository = (*orderRepository)(nil)
