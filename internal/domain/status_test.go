package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Label(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		want   string
	}{
		{name: "cancel", status: OrderStatusCancel, want: "orders.order_cancel"},
		{name: "establish", status: OrderStatusEstablish, want: "orders.order_confirm"},
		{name: "unknown falls back to establish", status: OrderStatus(999), want: OrderStatusEstablish.Label()},
		{name: "negative falls back to establish", status: OrderStatus(-1), want: "orders.order_confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Label())
		})
	}
}

func TestPaymentStatus_Label(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   string
	}{
		{PaymentStatusUnpaid, "orders.unpaid"},
		{PaymentStatusPaid, "orders.paid"},
		{PaymentStatusFailed, "orders.pay_unsuccess"},
		{PaymentStatusRefunding, "orders.refunding"},
		{PaymentStatusRefunded, "orders.refunded"},
		{PaymentStatusNoPaymentRequired, "orders.no_payment_required"},
		{PaymentStatus(6), LabelUnknownStatus},
		{PaymentStatus(-3), LabelUnknownStatus},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("PaymentStatus(%d).Label() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestPaymentStatus_LabelsAreDistinct(t *testing.T) {
	seen := make(map[string]PaymentStatus)
	for code, label := range PaymentStatusLabels() {
		if prev, ok := seen[label]; ok {
			t.Fatalf("label %q shared by %d and %d", label, prev, code)
		}
		seen[label] = code
	}
}

func TestLogisticsStatus_Label(t *testing.T) {
	assert.Equal(t, "orders.not_ship", LogisticsStatusPending.Label())
	assert.Equal(t, "orders.shipped", LogisticsStatusShipped.Label())
	assert.Equal(t, "orders.picked_up", LogisticsStatusReceived.Label())
	assert.Equal(t, "orders.digital_delivery", LogisticsStatusDigitalDelivery.Label())
	assert.Equal(t, LabelUnknownStatus, LogisticsStatus(4).Label())
}

func TestStatuses_MatchLabelKeys(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		assertSameCodes(t, OrderStatuses(), OrderStatusLabels())
		require.Equal(t, []OrderStatus{OrderStatusCancel, OrderStatusEstablish}, OrderStatuses())
	})
	t.Run("payment", func(t *testing.T) {
		assertSameCodes(t, PaymentStatuses(), PaymentStatusLabels())
		require.Len(t, PaymentStatuses(), 6)
	})
	t.Run("logistics", func(t *testing.T) {
		assertSameCodes(t, LogisticsStatuses(), LogisticsStatusLabels())
		require.Len(t, LogisticsStatuses(), 4)
	})
}

func TestStatuses_ReturnCopies(t *testing.T) {
	codes := PaymentStatuses()
	codes[0] = PaymentStatus(42)
	require.Equal(t, PaymentStatusUnpaid, PaymentStatuses()[0])

	labels := LogisticsStatusLabels()
	labels[LogisticsStatusPending] = "mutated"
	require.Equal(t, "orders.not_ship", LogisticsStatusPending.Label())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusCancel.IsValid())
	assert.False(t, OrderStatus(2).IsValid())
	assert.True(t, PaymentStatusNoPaymentRequired.IsValid())
	assert.False(t, PaymentStatus(6).IsValid())
	assert.True(t, LogisticsStatusDigitalDelivery.IsValid())
	assert.False(t, LogisticsStatus(-1).IsValid())
}

func assertSameCodes[S ~int](t *testing.T, codes []S, labels map[S]string) {
	t.Helper()

	seen := make(map[S]struct{}, len(codes))
	for _, c := range codes {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate status code %d", c)
		}
		seen[c] = struct{}{}
		if _, ok := labels[c]; !ok {
			t.Fatalf("status code %d has no label", c)
		}
	}
	require.Len(t, labels, len(codes))
}
