package bouncer

import (
	"github.com/lixenwraith/bouncers/core"
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/physics"
	"github.com/lixenwraith/bouncers/vmath"
)

// Bouncer is a moving point that reflects off the viewport edges
type Bouncer struct {
	kinetic core.Kinetic
	visual  Visual
}

// New creates a bouncer owning visual, drawing x then y velocity from rng
func New(visual Visual, rng *vmath.FastRand) *Bouncer {
	b := &Bouncer{visual: visual}
	b.kinetic.VelX = rng.FixedRange(parameter.SpeedMin, parameter.SpeedMax)
	b.kinetic.VelY = rng.FixedRange(parameter.SpeedMin, parameter.SpeedMax)
	return b
}

// Update advances position by velocity and reflects off bounds
func (b *Bouncer) Update(bounds core.Bounds) {
	x, y := b.visual.Position()
	x, y = physics.Step(x, y, &b.kinetic, bounds)
	b.visual.SetPosition(x, y)
}

// OverridePosition places the bouncer directly, bypassing velocity and reflection
func (b *Bouncer) OverridePosition(x, y int64) {
	b.visual.SetPosition(x, y)
}

func (b *Bouncer) Position() (x, y int64) {
	return b.visual.Position()
}

func (b *Bouncer) Velocity() (vx, vy int64) {
	return b.kinetic.VelX, b.kinetic.VelY
}

// Visual returns the owned visual handle
func (b *Bouncer) Visual() Visual {
	return b.visual
}

// Destroy releases the visual handle
func (b *Bouncer) Destroy() {
	if b.visual != nil {
		b.visual.Destroy()
	}
}
