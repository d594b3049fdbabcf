package status

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/bouncers/vmath"
)

// AtomicFloat stores a float64 gauge as bits in an atomic.Uint64
// Zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// SetFixed stores a Q32.32 value
func (f *AtomicFloat) SetFixed(val int64) {
	f.Set(vmath.ToFloat(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
