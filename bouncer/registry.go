package bouncer

import (
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/vmath"
)

// Registry is a fixed-capacity, insertion-ordered bouncer collection
// The first insertion becomes the distinguished bouncer; later insertions fill others
// Bouncers are never removed individually; Close releases all of them
type Registry struct {
	surface       Surface
	distinguished *Bouncer
	others        [parameter.MaxBouncers - 1]*Bouncer
	otherCount    int
}

// NewRegistry creates an empty registry creating visuals from surface
func NewRegistry(surface Surface) *Registry {
	return &Registry{surface: surface}
}

// Add constructs a bouncer and inserts it, returns false without side effects when saturated
func (r *Registry) Add(rng *vmath.FastRand) bool {
	if r.Len() >= r.Cap() {
		return false
	}
	b := New(r.surface.Create(), rng)
	if r.distinguished == nil {
		r.distinguished = b
		return true
	}
	r.others[r.otherCount] = b
	r.otherCount++
	return true
}

// Len returns the number of bouncers, distinguished included
func (r *Registry) Len() int {
	if r.distinguished == nil {
		return 0
	}
	return 1 + r.otherCount
}

// Cap returns the fixed capacity
func (r *Registry) Cap() int {
	return parameter.MaxBouncers
}

// Distinguished returns the average bouncer, nil before the first insertion
func (r *Registry) Distinguished() *Bouncer {
	return r.distinguished
}

// Others returns the non-distinguished bouncers in insertion order
// The slice aliases registry storage and must not be retained across Add
func (r *Registry) Others() []*Bouncer {
	return r.others[:r.otherCount]
}

// All returns every bouncer in insertion order
func (r *Registry) All() []*Bouncer {
	if r.distinguished == nil {
		return nil
	}
	all := make([]*Bouncer, 0, r.Len())
	all = append(all, r.distinguished)
	return append(all, r.Others()...)
}

// Close destroys every visual and empties the registry
func (r *Registry) Close() {
	for _, b := range r.All() {
		b.Destroy()
	}
	r.distinguished = nil
	for i := range r.others {
		r.others[i] = nil
	}
	r.otherCount = 0
}
