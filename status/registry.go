package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the metrics facade shared by the frame loop and the status bar
// The loop caches pointers at construction and writes atomics each frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot renders every metric as key=value in sorted order, ints first
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, key+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, key+"="+strconv.FormatFloat(v.Get(), 'f', 2, 64))
	})
	return out
}
