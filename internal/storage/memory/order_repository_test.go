package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/storage/memory"
	"github.com/vladislavdragonenkov/ministore/internal/storage/storagetest"
)

func TestRepositories_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) domain.Repositories {
		return memory.NewRepositories(memory.NewStore())
	})
}

func TestOrderRepository_DeleteCascadesChildren(t *testing.T) {
	repos := memory.NewRepositories(memory.NewStore())
	ctx := context.Background()

	id, err := repos.Orders.Create(ctx, storagetest.SampleOrder(1))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id}); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if err := repos.Products.Create(ctx, domain.OrderProduct{OrderID: id, Quantity: 1}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	if err := repos.Orders.Delete(ctx, id); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := repos.Payments.GetByOrderID(ctx, id); err != domain.ErrPaymentNotFound {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	products, err := repos.Products.ListByOrderID(ctx, id)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected products removed with order, got %d", len(products))
	}
}

func TestProductRepository_CreateManyIsAllOrNothing(t *testing.T) {
	repos := memory.NewRepositories(memory.NewStore())
	ctx := context.Background()

	id, err := repos.Orders.Create(ctx, storagetest.SampleOrder(1))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	err = repos.Products.CreateMany(ctx, []domain.OrderProduct{
		{OrderID: id, Quantity: 1},
		{OrderID: id + 1, Quantity: 1},
	})
	if err == nil {
		t.Fatal("expected error for product of missing order")
	}

	products, err := repos.Products.ListByOrderID(ctx, id)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products after failed batch, got %d", len(products))
	}
}

func TestOrderRepository_ConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	repos := memory.NewRepositories(memory.NewStore())
	ctx := context.Background()

	const workers = 32
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repos.Orders.Create(ctx, storagetest.SampleOrder(1))
			if err != nil {
				t.Errorf("create order: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != workers {
		t.Fatalf("expected %d ids, got %d", workers, len(seen))
	}
}

func TestRepositories_StoredTimesAreNotShared(t *testing.T) {
	repos := memory.NewRepositories(memory.NewStore())
	ctx := context.Background()

	shipped := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	paid := shipped.Add(time.Hour)
	delivered := shipped.Add(2 * time.Hour)
	want := []time.Time{shipped, paid, delivered}

	order := storagetest.SampleOrder(1)
	order.ShippedAt = &shipped
	id, err := repos.Orders.Create(ctx, order)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := repos.Payments.Create(ctx, domain.OrderPayment{OrderID: id, PaymentDate: &paid}); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if err := repos.Logistics.Create(ctx, domain.OrderLogistics{OrderID: id, DeliveryDate: &delivered}); err != nil {
		t.Fatalf("create logistics: %v", err)
	}

	// Правки вызывающего после записи не должны попадать в хранилище.
	shipped = shipped.AddDate(1, 0, 0)
	paid = paid.AddDate(1, 0, 0)
	delivered = delivered.AddDate(1, 0, 0)

	gotOrder, err := repos.Orders.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	gotPayment, err := repos.Payments.GetByOrderID(ctx, id)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	gotLogistics, err := repos.Logistics.GetByOrderID(ctx, id)
	if err != nil {
		t.Fatalf("get logistics: %v", err)
	}
	for i, got := range []*time.Time{gotOrder.ShippedAt, gotPayment.PaymentDate, gotLogistics.DeliveryDate} {
		if got == nil || !got.Equal(want[i]) {
			t.Fatalf("time #%d: expected %v, got %v", i, want[i], got)
		}
	}

	// Правки прочитанной записи тоже.
	*gotOrder.ShippedAt = time.Time{}
	again, err := repos.Orders.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get order again: %v", err)
	}
	if !again.ShippedAt.Equal(want[0]) {
		t.Fatalf("expected stored shipped_at %v, got %v", want[0], again.ShippedAt)
	}

	listed, err := repos.Payments.ListByStatus(ctx, domain.PaymentStatusUnpaid)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(listed) != 1 || listed[0].PaymentDate == gotPayment.PaymentDate {
		t.Fatalf("expected a detached payment copy, got %+v", listed)
	}
}
