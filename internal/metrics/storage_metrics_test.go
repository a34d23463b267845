package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewStorageMetricsWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorageMetricsWithRegisterer(reg)

	if metrics.operations == nil {
		t.Error("operations counter vec should not be nil")
	}
	if metrics.duration == nil {
		t.Error("duration histogram vec should not be nil")
	}
	if metrics.inFlight == nil {
		t.Error("inFlight gauge should not be nil")
	}
}

func TestNewStorageMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewStorageMetricsWithRegisterer(reg)
	second := NewStorageMetricsWithRegisterer(reg)

	if first.operations != second.operations {
		t.Fatal("expected second registration to reuse the operations counter")
	}
	if first.duration != second.duration {
		t.Fatal("expected second registration to reuse the duration histogram")
	}
}

func TestRecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorageMetricsWithRegisterer(reg)

	metrics.OperationStarted()
	metrics.OperationStarted()
	metrics.RecordOperation("payments", "GetByOrderID", ResultOK, 10*time.Millisecond)
	metrics.RecordOperation("payments", "GetByOrderID", ResultNotFound, 5*time.Millisecond)

	var counter dto.Metric
	if err := metrics.operations.WithLabelValues("payments", "GetByOrderID", ResultOK).Write(&counter); err != nil {
		t.Fatalf("failed to write counter: %v", err)
	}
	if got := counter.GetCounter().GetValue(); got != 1 {
		t.Errorf("expected ok counter to be 1, got %f", got)
	}

	var gauge dto.Metric
	if err := metrics.inFlight.Write(&gauge); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if got := gauge.GetGauge().GetValue(); got != 0 {
		t.Errorf("expected no in-flight operations, got %f", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	var histogram *dto.Histogram
	for _, family := range families {
		if family.GetName() == "ministore_storage_operation_duration_seconds" {
			histogram = family.GetMetric()[0].GetHistogram()
		}
	}
	if histogram == nil {
		t.Fatal("duration histogram was not gathered")
	}
	if got := histogram.GetSampleCount(); got != 2 {
		t.Errorf("expected 2 duration samples, got %d", got)
	}
}
