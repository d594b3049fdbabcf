package physics

import (
	"github.com/lixenwraith/bouncers/core"
)

// Integrate advances a position by one frame of velocity: p = p + v
func Integrate(x, y int64, k *core.Kinetic) (int64, int64) {
	return x + k.VelX, y + k.VelY
}

// ReflectX handles horizontal boundary collision, returns the clamped position and whether reflection occurred
// Bounds are inclusive; max is tested before min and both are always tested
func ReflectX(x int64, k *core.Kinetic, minX, maxX int64) (int64, bool) {
	reflected := false
	if x > maxX {
		x = maxX
		k.VelX = -k.VelX
		reflected = true
	}
	if x < minX {
		x = minX
		k.VelX = -k.VelX
		reflected = true
	}
	return x, reflected
}

// ReflectY handles vertical boundary collision, returns the clamped position and whether reflection occurred
func ReflectY(y int64, k *core.Kinetic, minY, maxY int64) (int64, bool) {
	reflected := false
	if y > maxY {
		y = maxY
		k.VelY = -k.VelY
		reflected = true
	}
	if y < minY {
		y = minY
		k.VelY = -k.VelY
		reflected = true
	}
	return y, reflected
}

// ReflectBounds handles both axis boundary collisions independently, returns true if any reflection occurred
func ReflectBounds(x, y int64, k *core.Kinetic, b core.Bounds) (int64, int64, bool) {
	x, rx := ReflectX(x, k, b.MinX, b.MaxX)
	y, ry := ReflectY(y, k, b.MinY, b.MaxY)
	return x, y, rx || ry
}

// Step integrates one frame and reflects off the bounds
func Step(x, y int64, k *core.Kinetic, b core.Bounds) (int64, int64) {
	x, y = Integrate(x, y, k)
	x, y, _ = ReflectBounds(x, y, k, b)
	return x, y
}
