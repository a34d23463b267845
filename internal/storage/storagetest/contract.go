// Package storagetest содержит общий набор проверок, который прогоняется
// против каждой реализации domain.Repositories.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// Factory возвращает пустое хранилище для одного подтеста.
type Factory func(t *testing.T) domain.Repositories

// Run запускает все проверки контракта репозиториев.
func Run(t *testing.T, newRepos Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, repos domain.Repositories)
	}{
		{"OrderRoundTrip", testOrderRoundTrip},
		{"OrderLookups", testOrderLookups},
		{"OrderUpdateAndDelete", testOrderUpdateAndDelete},
		{"ProductsCreateMany", testProductsCreateMany},
		{"PaymentScenario", testPaymentScenario},
		{"PaymentDuplicate", testPaymentDuplicate},
		{"LogisticsDefaults", testLogisticsDefaults},
		{"ChildForMissingOrder", testChildForMissingOrder},
		{"BatchAndCustomFields", testBatchAndCustomFields},
		{"DeleteWithoutChildren", testDeleteWithoutChildren},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newRepos(t))
		})
	}
}

// SampleOrder возвращает заказ магазина storeID с заполненными денежными полями.
func SampleOrder(storeID int64) domain.Order {
	return domain.Order{
		StoreID:     storeID,
		HashCode:    "h-" + time.Now().Format("150405.000000"),
		TotalAmount: decimal.RequireFromString("100.00"),
		Subtotal:    decimal.RequireFromString("90.00"),
		DeliveryFee: decimal.RequireFromString("10.00"),
		PayerName:   "Alice",
		PayerEmail:  "alice@example.com",
		Status:      domain.OrderStatusEstablish,
		Currency:    "TWD",
	}
}

func createOrder(t *testing.T, repos domain.Repositories, order domain.Order) int64 {
	t.Helper()

	id, err := repos.Orders.Create(context.Background(), order)
	require.NoError(t, err)
	require.Positive(t, id)
	return id
}

func testOrderRoundTrip(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	in := SampleOrder(1)
	shipped := time.Now().UTC().Truncate(time.Second)
	in.ShippedAt = &shipped
	id := createOrder(t, repos, in)

	got, err := repos.Orders.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.StoreID, got.StoreID)
	assert.Equal(t, in.HashCode, got.HashCode)
	assert.True(t, in.TotalAmount.Equal(got.TotalAmount), "total: %s", got.TotalAmount)
	assert.True(t, in.Subtotal.Equal(got.Subtotal), "subtotal: %s", got.Subtotal)
	assert.Equal(t, in.PayerEmail, got.PayerEmail)
	assert.Equal(t, in.Status, got.Status)
	require.NotNil(t, got.ShippedAt)
	assert.True(t, shipped.Equal(*got.ShippedAt))
	assert.Nil(t, got.PickingUpAt)
	assert.False(t, got.CreatedAt.Before(before), "created_at %s before %s", got.CreatedAt, before)
	assert.False(t, got.UpdatedAt.Before(before))
}

func testOrderLookups(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()

	first := createOrder(t, repos, SampleOrder(1))
	cancelled := SampleOrder(1)
	cancelled.Status = domain.OrderStatusCancel
	second := createOrder(t, repos, cancelled)
	other := SampleOrder(2)
	other.PayerEmail = "bob@example.com"
	createOrder(t, repos, other)

	_, err := repos.Orders.GetByIDAndStoreID(ctx, first, 2)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	got, err := repos.Orders.GetByIDAndStoreID(ctx, first, 1)
	require.NoError(t, err)
	assert.Equal(t, first, got.ID)

	byEmail, err := repos.Orders.ListByStoreAndPayerEmail(ctx, 1, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	byStatus, err := repos.Orders.ListByStoreAndStatus(ctx, 1, domain.OrderStatusCancel)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, second, byStatus[0].ID)

	established, err := repos.Orders.ListByStatus(ctx, domain.OrderStatusEstablish)
	require.NoError(t, err)
	assert.Len(t, established, 2)

	none, err := repos.Orders.ListByStoreAndPayerEmail(ctx, 3, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func testOrderUpdateAndDelete(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	order, err := repos.Orders.GetByID(ctx, id)
	require.NoError(t, err)
	order.Status = domain.OrderStatusCancel
	order.Remark = "customer request"
	require.NoError(t, repos.Orders.Update(ctx, order))

	got, err := repos.Orders.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancel, got.Status)
	assert.Equal(t, "customer request", got.Remark)

	missing := SampleOrder(1)
	missing.ID = id + 1000
	require.NoError(t, repos.Orders.Update(ctx, missing))

	require.NoError(t, repos.Orders.Delete(ctx, id))
	_, err = repos.Orders.GetByID(ctx, id)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.NoError(t, repos.Orders.Delete(ctx, id))
}

func testProductsCreateMany(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	products := []domain.OrderProduct{
		{OrderID: id, ProductID: 11, Title: "Tea", Price: decimal.RequireFromString("30.00"), Quantity: 2},
		{OrderID: id, ProductID: 12, Title: "Cup", Price: decimal.RequireFromString("20.00"), Quantity: 1},
		{OrderID: id, ProductID: 13, Title: "Pot", Price: decimal.RequireFromString("10.50"), Quantity: 1},
	}
	require.NoError(t, repos.Products.CreateMany(ctx, products))
	require.NoError(t, repos.Products.CreateMany(ctx, nil))

	got, err := repos.Products.ListByOrderID(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, id, p.OrderID)
		assert.Equal(t, products[i].ProductID, p.ProductID)
		assert.True(t, products[i].Price.Equal(p.Price))
	}

	got[0].Quantity = 5
	require.NoError(t, repos.Products.Update(ctx, got[0]))
	updated, err := repos.Products.ListByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, updated[0].Quantity)
	assert.Equal(t, 1, updated[1].Quantity)

	require.NoError(t, repos.Products.DeleteByOrderID(ctx, id))
	left, err := repos.Products.ListByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func testPaymentScenario(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	require.NoError(t, repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id, VendorID: 7, PaymentMethod: "card"}))

	payment, err := repos.Payments.GetByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusUnpaid, payment.Status)
	assert.Equal(t, int64(7), payment.VendorID)

	payment.Status = domain.PaymentStatusPaid
	require.NoError(t, repos.Payments.Update(ctx, payment))

	paid, err := repos.Payments.ListByOrderIDAndStatus(ctx, id, domain.PaymentStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "card", paid[0].PaymentMethod)

	payment.Status = domain.PaymentStatusRefunded
	require.NoError(t, repos.Payments.Update(ctx, payment))
	refunded, err := repos.Payments.ListByOrderIDAndStatus(ctx, id, domain.PaymentStatusRefunded)
	require.NoError(t, err)
	assert.Len(t, refunded, 1)
	byStatus, err := repos.Payments.ListByStatus(ctx, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	require.NoError(t, repos.Payments.DeleteByOrderID(ctx, id))
	_, err = repos.Payments.GetByOrderID(ctx, id)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func testPaymentDuplicate(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	require.NoError(t, repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id}))
	err := repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id})
	require.ErrorIs(t, err, domain.ErrDuplicateRecord)
	assert.True(t, domain.IsStorageError(err))
}

func testLogisticsDefaults(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	_, err := repos.Logistics.GetByOrderID(ctx, id)
	require.ErrorIs(t, err, domain.ErrLogisticsNotFound)

	require.NoError(t, repos.Logistics.Create(ctx, domain.OrderLogistics{
		OrderID:        id,
		RecipientName:  "Alice",
		CVSName:        "Corner store",
		CashOnDelivery: true,
	}))
	got, err := repos.Logistics.GetByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.LogisticsStatusPending, got.Status)
	assert.True(t, got.CashOnDelivery)

	got.Status = domain.LogisticsStatusShipped
	got.LogisticsNo = "TRACK-1"
	require.NoError(t, repos.Logistics.Update(ctx, got))

	shipped, err := repos.Logistics.ListByStatus(ctx, domain.LogisticsStatusShipped)
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, "TRACK-1", shipped[0].LogisticsNo)

	pending, err := repos.Logistics.ListByOrderIDAndStatus(ctx, id, domain.LogisticsStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func testChildForMissingOrder(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	const missing = int64(987654)

	require.ErrorIs(t, repos.Payments.Create(ctx, domain.OrderPayment{OrderID: missing}), domain.ErrOrderNotFound)
	require.ErrorIs(t, repos.Logistics.Create(ctx, domain.OrderLogistics{OrderID: missing}), domain.ErrOrderNotFound)
	require.ErrorIs(t, repos.Products.Create(ctx, domain.OrderProduct{OrderID: missing}), domain.ErrOrderNotFound)
	require.ErrorIs(t, repos.Batches.Create(ctx, missing, domain.NewBatchID()), domain.ErrOrderNotFound)
	require.ErrorIs(t, repos.CustomFields.Create(ctx, domain.OrderCustomField{OrderID: missing, CustomFieldsID: 1}), domain.ErrOrderNotFound)

	err := repos.Products.CreateMany(ctx, []domain.OrderProduct{{OrderID: missing, Quantity: 1}})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func testBatchAndCustomFields(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	first := domain.NewBatchID()
	require.NoError(t, repos.Batches.Create(ctx, id, first))
	batches, err := repos.Batches.ListByOrderID(ctx, id)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, first, batches[0].BatchID)

	second := domain.NewBatchID()
	require.NoError(t, repos.Batches.Update(ctx, id, second))
	batches, err = repos.Batches.ListByOrderID(ctx, id)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, second, batches[0].BatchID)

	require.NoError(t, repos.CustomFields.Create(ctx, domain.OrderCustomField{
		OrderID: id, CustomFieldsID: 3, CustomFieldName: "Gift wrap", CustomAnswer: "no",
	}))
	require.NoError(t, repos.CustomFields.Create(ctx, domain.OrderCustomField{
		OrderID: id, CustomFieldsID: 4, CustomFieldName: "Note", CustomAnswer: "",
	}))
	require.NoError(t, repos.CustomFields.UpdateAnswer(ctx, id, 3, "yes"))
	require.NoError(t, repos.CustomFields.UpdateAnswer(ctx, id, 99, "ignored"))

	fields, err := repos.CustomFields.ListByOrderID(ctx, id)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "yes", fields[0].CustomAnswer)
	assert.Equal(t, "", fields[1].CustomAnswer)

	require.NoError(t, repos.Batches.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.CustomFields.DeleteByOrderID(ctx, id))
	batches, err = repos.Batches.ListByOrderID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func testDeleteWithoutChildren(t *testing.T, repos domain.Repositories) {
	ctx := context.Background()
	id := createOrder(t, repos, SampleOrder(1))

	require.NoError(t, repos.Products.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.Payments.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.Logistics.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.Batches.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.CustomFields.DeleteByOrderID(ctx, id))
	require.NoError(t, repos.Orders.Delete(ctx, id))
}
