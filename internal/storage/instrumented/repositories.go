package instrumented

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

type orderRepository struct {
	next domain.OrderRepository
	obs  observer
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	return observe(ctx, r.obs, "Create", log.Fields{"store_id": order.StoreID}, func() (int64, error) {
		return r.next.Create(ctx, order)
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	return observe(ctx, r.obs, "GetByID", log.Fields{"order_id": id}, func() (domain.Order, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *orderRepository) GetByIDAndStoreID(ctx context.Context, id, storeID int64) (domain.Order, error) {
	return observe(ctx, r.obs, "GetByIDAndStoreID", log.Fields{"order_id": id, "store_id": storeID}, func() (domain.Order, error) {
		return r.next.GetByIDAndStoreID(ctx, id, storeID)
	})
}

func (r *orderRepository) ListByStoreAndPayerEmail(ctx context.Context, storeID int64, payerEmail string) ([]domain.Order, error) {
	return observe(ctx, r.obs, "ListByStoreAndPayerEmail", log.Fields{"store_id": storeID}, func() ([]domain.Order, error) {
		return r.next.ListByStoreAndPayerEmail(ctx, storeID, payerEmail)
	})
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return observe(ctx, r.obs, "ListByStatus", log.Fields{"status": int(status)}, func() ([]domain.Order, error) {
		return r.next.ListByStatus(ctx, status)
	})
}

func (r *orderRepository) ListByStoreAndStatus(ctx context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error) {
	return observe(ctx, r.obs, "ListByStoreAndStatus", log.Fields{"store_id": storeID, "status": int(status)}, func() ([]domain.Order, error) {
		return r.next.ListByStoreAndStatus(ctx, storeID, status)
	})
}

func (r *orderRepository) Update(ctx context.Context, order domain.Order) error {
	return r.obs.run(ctx, "Update", log.Fields{"order_id": order.ID}, func() error {
		return r.next.Update(ctx, order)
	})
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.obs.run(ctx, "Delete", log.Fields{"order_id": id}, func() error {
		return r.next.Delete(ctx, id)
	})
}

type productRepository struct {
	next domain.OrderProductRepository
	obs  observer
}

func (r *productRepository) Create(ctx context.Context, product domain.OrderProduct) error {
	return r.obs.run(ctx, "Create", log.Fields{"order_id": product.OrderID}, func() error {
		return r.next.Create(ctx, product)
	})
}

func (r *productRepository) CreateMany(ctx context.Context, products []domain.OrderProduct) error {
	return r.obs.run(ctx, "CreateMany", log.Fields{"count": len(products)}, func() error {
		return r.next.CreateMany(ctx, products)
	})
}

func (r *productRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	return observe(ctx, r.obs, "ListByOrderID", log.Fields{"order_id": orderID}, func() ([]domain.OrderProduct, error) {
		return r.next.ListByOrderID(ctx, orderID)
	})
}

func (r *productRepository) Update(ctx context.Context, product domain.OrderProduct) error {
	return r.obs.run(ctx, "Update", log.Fields{"product_row_id": product.ID}, func() error {
		return r.next.Update(ctx, product)
	})
}

func (r *productRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.obs.run(ctx, "DeleteByOrderID", log.Fields{"order_id": orderID}, func() error {
		return r.next.DeleteByOrderID(ctx, orderID)
	})
}

type paymentRepository struct {
	next domain.OrderPaymentRepository
	obs  observer
}

func (r *paymentRepository) Create(ctx context.Context, payment domain.OrderPayment) error {
	return r.obs.run(ctx, "Create", log.Fields{"order_id": payment.OrderID}, func() error {
		return r.next.Create(ctx, payment)
	})
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderPayment, error) {
	return observe(ctx, r.obs, "GetByOrderID", log.Fields{"order_id": orderID}, func() (domain.OrderPayment, error) {
		return r.next.GetByOrderID(ctx, orderID)
	})
}

func (r *paymentRepository) Update(ctx context.Context, payment domain.OrderPayment) error {
	return r.obs.run(ctx, "Update", log.Fields{"order_id": payment.OrderID, "status": int(payment.Status)}, func() error {
		return r.next.Update(ctx, payment)
	})
}

func (r *paymentRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.obs.run(ctx, "DeleteByOrderID", log.Fields{"order_id": orderID}, func() error {
		return r.next.DeleteByOrderID(ctx, orderID)
	})
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return observe(ctx, r.obs, "ListByStatus", log.Fields{"status": int(status)}, func() ([]domain.OrderPayment, error) {
		return r.next.ListByStatus(ctx, status)
	})
}

func (r *paymentRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) ([]domain.OrderPayment, error) {
	return observe(ctx, r.obs, "ListByOrderIDAndStatus", log.Fields{"order_id": orderID, "status": int(status)}, func() ([]domain.OrderPayment, error) {
		return r.next.ListByOrderIDAndStatus(ctx, orderID, status)
	})
}

type logisticsRepository struct {
	next domain.OrderLogisticsRepository
	obs  observer
}

func (r *logisticsRepository) Create(ctx context.Context, logistics domain.OrderLogistics) error {
	return r.obs.run(ctx, "Create", log.Fields{"order_id": logistics.OrderID}, func() error {
		return r.next.Create(ctx, logistics)
	})
}

func (r *logisticsRepository) GetByOrderID(ctx context.Context, orderID int64) (domain.OrderLogistics, error) {
	return observe(ctx, r.obs, "GetByOrderID", log.Fields{"order_id": orderID}, func() (domain.OrderLogistics, error) {
		return r.next.GetByOrderID(ctx, orderID)
	})
}

func (r *logisticsRepository) Update(ctx context.Context, logistics domain.OrderLogistics) error {
	return r.obs.run(ctx, "Update", log.Fields{"order_id": logistics.OrderID, "status": int(logistics.Status)}, func() error {
		return r.next.Update(ctx, logistics)
	})
}

func (r *logisticsRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.obs.run(ctx, "DeleteByOrderID", log.Fields{"order_id": orderID}, func() error {
		return r.next.DeleteByOrderID(ctx, orderID)
	})
}

func (r *logisticsRepository) ListByStatus(ctx context.Context, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return observe(ctx, r.obs, "ListByStatus", log.Fields{"status": int(status)}, func() ([]domain.OrderLogistics, error) {
		return r.next.ListByStatus(ctx, status)
	})
}

func (r *logisticsRepository) ListByOrderIDAndStatus(ctx context.Context, orderID int64, status domain.LogisticsStatus) ([]domain.OrderLogistics, error) {
	return observe(ctx, r.obs, "ListByOrderIDAndStatus", log.Fields{"order_id": orderID, "status": int(status)}, func() ([]domain.OrderLogistics, error) {
		return r.next.ListByOrderIDAndStatus(ctx, orderID, status)
	})
}

type batchRepository struct {
	next domain.OrderBatchRepository
	obs  observer
}

func (r *batchRepository) Create(ctx context.Context, orderID int64, batchID string) error {
	return r.obs.run(ctx, "Create", log.Fields{"order_id": orderID, "batch_id": batchID}, func() error {
		return r.next.Create(ctx, orderID, batchID)
	})
}

func (r *batchRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderBatch, error) {
	return observe(ctx, r.obs, "ListByOrderID", log.Fields{"order_id": orderID}, func() ([]domain.OrderBatch, error) {
		return r.next.ListByOrderID(ctx, orderID)
	})
}

func (r *batchRepository) Update(ctx context.Context, orderID int64, batchID string) error {
	return r.obs.run(ctx, "Update", log.Fields{"order_id": orderID, "batch_id": batchID}, func() error {
		return r.next.Update(ctx, orderID, batchID)
	})
}

func (r *batchRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.obs.run(ctx, "DeleteByOrderID", log.Fields{"order_id": orderID}, func() error {
		return r.next.DeleteByOrderID(ctx, orderID)
	})
}

type customFieldRepository struct {
	next domain.OrderCustomFieldRepository
	obs  observer
}

func (r *customFieldRepository) Create(ctx context.Context, field domain.OrderCustomField) error {
	return r.obs.run(ctx, "Create", log.Fields{"order_id": field.OrderID}, func() error {
		return r.next.Create(ctx, field)
	})
}

func (r *customFieldRepository) UpdateAnswer(ctx context.Context, orderID, customFieldsID int64, answer string) error {
	return r.obs.run(ctx, "UpdateAnswer", log.Fields{"order_id": orderID, "custom_fields_id": customFieldsID}, func() error {
		return r.next.UpdateAnswer(ctx, orderID, customFieldsID, answer)
	})
}

func (r *customFieldRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderCustomField, error) {
	return observe(ctx, r.obs, "ListByOrderID", log.Fields{"order_id": orderID}, func() ([]domain.OrderCustomField, error) {
		return r.next.ListByOrderID(ctx, orderID)
	})
}

func (r *customFieldRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.obs.run(ctx, "DeleteByOrderID", log.Fields{"order_id": orderID}, func() error {
		return r.next.DeleteByOrderID(ctx, orderID)
	})
}

var (
	_ domain.OrderRepository            = (*orderRepository)(nil)
	_ domain.OrderProductRepository     = (*productRepository)(nil)
	_ domain.OrderPaymentRepository     = (*paymentRepository)(nil)
	_ domain.OrderLogisticsRepository   = (*logisticsRepository)(nil)
	_ domain.OrderBatchRepository       = (*batchRepository)(nil)
	_ domain.OrderCustomFieldRepository = (*customFieldRepository)(nil)
)
