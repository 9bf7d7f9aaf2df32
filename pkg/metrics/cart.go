package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart mutation and snapshot activity.
type CartMetrics struct {
	mutations        *prometheus.CounterVec
	snapshotWrites   prometheus.Counter
	snapshotFailures prometheus.Counter
	restoreFallbacks prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	snapshotWrites := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_snapshot_writes_total",
		Help: "Snapshot write attempts that succeeded.",
	})
	snapshotFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_snapshot_failures_total",
		Help: "Snapshot write attempts that failed after retries.",
	})
	restoreFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_restore_fallbacks_total",
		Help: "Restores that fell back to an empty cart.",
	})
	reg.MustRegister(mutations, snapshotWrites, snapshotFailures, restoreFallbacks)
	return &CartMetrics{
		mutations:        mutations,
		snapshotWrites:   snapshotWrites,
		snapshotFailures: snapshotFailures,
		restoreFallbacks: restoreFallbacks,
	}
}

// IncMutation counts one mutation of the named operation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncSnapshotWrite counts one successful snapshot write.
func (c *CartMetrics) IncSnapshotWrite() {
	if c == nil || c.snapshotWrites == nil {
		return
	}
	c.snapshotWrites.Inc()
}

// IncSnapshotFailure counts one snapshot write that exhausted retries.
func (c *CartMetrics) IncSnapshotFailure() {
	if c == nil || c.snapshotFailures == nil {
		return
	}
	c.snapshotFailures.Inc()
}

// IncRestoreFallback counts one restore that discarded persisted state.
func (c *CartMetrics) IncRestoreFallback() {
	if c == nil || c.restoreFallbacks == nil {
		return
	}
	c.restoreFallbacks.Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
