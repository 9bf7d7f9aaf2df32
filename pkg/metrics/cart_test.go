package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCartMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCartMetrics(reg)

	metrics.IncMutation("add_item")
	metrics.IncMutation("add_item")
	metrics.IncMutation("Remove Item")
	metrics.IncSnapshotWrite()
	metrics.IncSnapshotFailure()
	metrics.IncRestoreFallback()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", "add_item"); err != nil {
		t.Fatalf("fetch add_item: %v", err)
	} else if got != 2 {
		t.Fatalf("expected add_item=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", "remove_item"); err != nil {
		t.Fatalf("fetch remove_item: %v", err)
	} else if got != 1 {
		t.Fatalf("expected remove_item=1 after label normalization, got %f", got)
	}

	for _, name := range []string{"cart_snapshot_writes_total", "cart_snapshot_failures_total", "cart_restore_fallbacks_total"} {
		mf := findMetricFamily(mfs, name)
		if mf == nil {
			t.Fatalf("metric %q not registered", name)
		}
		if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
			t.Fatalf("expected %s=1, got %f", name, got)
		}
	}
}

func TestCartMetricsNilRegistererIsInert(t *testing.T) {
	metrics := NewCartMetrics(nil)
	metrics.IncMutation("add_item")
	metrics.IncSnapshotWrite()
	metrics.IncSnapshotFailure()
	metrics.IncRestoreFallback()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
