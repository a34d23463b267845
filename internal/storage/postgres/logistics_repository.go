package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const logisticsTable = "ministore_order_logistics"

var (
	logisticsColumns = []string{
		"order_id", "vendor_logistics", "logistics_method", "logistics_no", "logistics_type",
		"delivery_date", "delivery_no",
		"recipient_name", "recipient_mobile", "recipient_phone", "recipient_zip_code", "recipient_address",
		"sender_name", "sender_mobile", "sender_phone", "sender_zip_code", "sender_address",
		"cvs_id", "cvs_name", "cvs_address", "cvs_delivery_type",
		"home_temperature", "home_distance", "home_specification", "home_pickup_time", "home_delivery_time",
		"cash_on_delivery", "extra_data", "status",
	}
	logisticsSelectColumns = withTimestamps(logisticsColumns)
	logisticsUpdateColumns = logisticsColumns[1:]
)

type logisticsRepository struct {
	db *sql.DB
}

// NewOrderLogisticsRepository создаёт PostgreSQL-реализацию OrderLogisticsRepository.
func NewOrderLogisticsRepository(store *Store) domain.OrderLogisticsRepository {
	return &logisticsRepository{db: store.DB()}
}

func (r *logisticsRepository) Create(ctx context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}
	_, err := execStatement(ctx, r.db, "insert order logistics",
		insertSQL(logisticsTable, logisticsColumns, 1, ""), logisticsArgs(logistics)...)
	return err
}

func (r *logisticsRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderLogistics, error) {
	return queryOne(ctx, r.db, "select order logistics", domain.ErrLogisticsNotFound, scanLogistics,
		selectSQL(logisticsTable, logisticsSelectColumns, "order_id"), orderID)
}

func (r *logisticsRepository) Update(ctx context.Context, logistics domain.OrderLogistics) error {
	if err := logistics.Validate(); err != nil {
		return err
	}
	args := append(logisticsArgs(logistics)[1:], logistics.OrderID)
	_, err := execStatement(ctx, r.db, "update order logistics",
		updateSQL(logisticsTable, logisticsUpdateColumns, "order_id"), args...)
	return err
}

func (r *logisticsRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	_, err := execStatement(ctx, r.db, "delete order logistics",
		`DELETE FROM ministore_order_logistics WHERE order_id = $1`, orderID)
	return err
}

func (r *logisticsRepository) ListByStatus(ctx context.Context, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return queryList(ctx, r.db, "list logistics by status", scanLogistics,
		selectSQL(logisticsTable, logisticsSelectColumns, "status"), int(status))
}

func (r *logisticsRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return queryList(ctx, r.db, "list order logistics by status", scanLogistics,
		selectSQL(logisticsTable, logisticsSelectColumns, "order_id", "status"), orderID, int(status))
}

func logisticsArgs(l domain.OrderLogistics) []any {
	return []any{
		l.OrderID, l.VendorLogistics, l.LogisticsMethod, l.LogisticsNo, l.LogisticsType,
		l.DeliveryDate, l.DeliveryNo,
		l.RecipientName, l.RecipientMobile, l.RecipientPhone, l.RecipientZipCode, l.RecipientAddress,
		l.SenderName, l.SenderMobile, l.SenderPhone, l.SenderZipCode, l.SenderAddress,
		l.CVSID, l.CVSName, l.CVSAddress, l.CVSDeliveryType,
		l.HomeTemperature, l.HomeDistance, l.HomeSpecification, l.HomePickupTime, l.HomeDeliveryTime,
		l.CashOnDelivery, l.ExtraData, int(l.Status),
	}
}

func scanLogistics(row rowScanner) (domain.OrderLogistics, error) {
	var (
		l      domain.OrderLogistics
		status int
	)
	err := row.Scan(
		&l.ID,
		&l.OrderID, &l.VendorLogistics, &l.LogisticsMethod, &l.LogisticsNo, &l.LogisticsType,
		&l.DeliveryDate, &l.DeliveryNo,
		&l.RecipientName, &l.RecipientMobile, &l.RecipientPhone, &l.RecipientZipCode, &l.RecipientAddress,
		&l.SenderName, &l.SenderMobile, &l.SenderPhone, &l.SenderZipCode, &l.SenderAddress,
		&l.CVSID, &l.CVSName, &l.CVSAddress, &l.CVSDeliveryType,
		&l.HomeTemperature, &l.HomeDistance, &l.HomeSpecification, &l.HomePickupTime, &l.HomeDeliveryTime,
		&l.CashOnDelivery, &l.ExtraData, &status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	l.Status = domain.LogisticsStatus(status)
	return l, err
}

var _ domain.OrderLogisticsRepository = (*logisticsRepository)(nil)
