package core

import "github.com/lixenwraith/bouncers/vmath"

// Bounds is an inclusive axis-aligned viewport rectangle in Q32.32 world units
type Bounds struct {
	MinX, MaxX int64
	MinY, MaxY int64
}

// BoundsFromHalfExtents returns a viewport centered on the origin
func BoundsFromHalfExtents(halfWidth, halfHeight int) Bounds {
	return Bounds{
		MinX: -vmath.FromInt(halfWidth),
		MaxX: vmath.FromInt(halfWidth),
		MinY: -vmath.FromInt(halfHeight),
		MaxY: vmath.FromInt(halfHeight),
	}
}

// Contains reports whether (x, y) lies within the bounds, edges included
func (b Bounds) Contains(x, y int64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Bounds) Width() int64  { return b.MaxX - b.MinX }
func (b Bounds) Height() int64 { return b.MaxY - b.MinY }
