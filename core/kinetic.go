package core

// Kinetic holds a bouncer's velocity in world units per frame (Q32.32)
// Position is not stored here; the visual handle owns it
type Kinetic struct {
	VelX, VelY int64
}
