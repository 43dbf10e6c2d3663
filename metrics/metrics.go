// Package metrics exposes Prometheus collectors describing heap activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "heap"

// Heap holds the collectors for one heap (or one family of heaps sharing a
// namespace). A nil *Heap records nothing.
type Heap struct {
	Inserts         prometheus.Counter
	Removals        prometheus.Counter
	PriorityChanges prometheus.Counter
	Grows           prometheus.Counter
	Rejected        *prometheus.CounterVec
	Size            prometheus.Gauge
	Capacity        prometheus.Gauge
}

// NewHeap creates the heap collectors under the given namespace.
func NewHeap(namespace string) *Heap {
	return &Heap{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts_total",
			Help:      "Total number of entries inserted.",
		}),
		Removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "removals_total",
			Help:      "Total number of entries removed.",
		}),
		PriorityChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "priority_changes_total",
			Help:      "Total number of priority changes applied.",
		}),
		Grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grow_total",
			Help:      "Total number of times backing storage was extended.",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rejected_total",
			Help:      "Total number of operations rejected, by reason.",
		}, []string{"reason"}),
		Size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size",
			Help:      "Number of entries currently held.",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of allocated slots.",
		}),
	}
}

// Register registers all collectors with r.
func (m *Heap) Register(r prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (m *Heap) MustRegister(r prometheus.Registerer) {
	r.MustRegister(m.collectors()...)
}

func (m *Heap) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Inserts,
		m.Removals,
		m.PriorityChanges,
		m.Grows,
		m.Rejected,
		m.Size,
		m.Capacity,
	}
}

// Inserted records a successful insert leaving size entries.
func (m *Heap) Inserted(size int) {
	if m == nil {
		return
	}
	m.Inserts.Inc()
	m.Size.Set(float64(size))
}

// Removed records a removal leaving size entries.
func (m *Heap) Removed(size int) {
	if m == nil {
		return
	}
	m.Removals.Inc()
	m.Size.Set(float64(size))
}

// PriorityChanged records a successful priority change.
func (m *Heap) PriorityChanged() {
	if m == nil {
		return
	}
	m.PriorityChanges.Inc()
}

// Grew records storage growth to capacity slots.
func (m *Heap) Grew(capacity int) {
	if m == nil {
		return
	}
	m.Grows.Inc()
	m.Capacity.Set(float64(capacity))
}

// SetCapacity records the current number of allocated slots.
func (m *Heap) SetCapacity(capacity int) {
	if m == nil {
		return
	}
	m.Capacity.Set(float64(capacity))
}

// Reject records an operation refused for reason.
func (m *Heap) Reject(reason string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(reason).Inc()
}
