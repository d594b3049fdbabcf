package status

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("centroid.x")
	b := m.Get("centroid.x")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("frame").Add(1)
		}()
	}
	wg.Wait()
	if got := m.Get("frame").Load(); got != 16 {
		t.Errorf("frame = %d, want 16", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSortedAfterUnorderedRegistration(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"frame", "bouncers", "report.avg_vx", "centroid.y", "centroid.x", "frame"} {
		m.Get(k)
	}

	var got []string
	m.Range(func(key string, _ *atomic.Int64) {
		got = append(got, key)
	})
	want := []string{"bouncers", "centroid.x", "centroid.y", "frame", "report.avg_vx"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Range order = %v, want %v", got, want)
	}
	if m.Count() != len(want) {
		t.Errorf("Count = %d, want %d", m.Count(), len(want))
	}
}

func TestMetricMapRangeEmpty(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Range(func(string, *AtomicFloat) {
		t.Error("callback invoked on empty map")
	})
}

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("frame").Store(3)
	r.Ints.Get("bouncers").Store(2)
	r.Floats.Get("centroid.x").Set(-1.5)

	want := []string{"bouncers=2", "frame=3", "centroid.x=-1.50"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot = %v, want %v", got, want)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount = %d, want 3", r.TotalCount())
	}
}

func TestAtomicFloatSetFixed(t *testing.T) {
	var f AtomicFloat
	f.SetFixed(-(3 << 31))
	if got := f.Get(); got != -1.5 {
		t.Errorf("Get = %v, want -1.5", got)
	}
}
