package parameter

import "github.com/lixenwraith/bouncers/vmath"

// Bouncer Population
const (
	// MaxBouncers is the registry capacity, distinguished bouncer included
	MaxBouncers = 20
)

// Initial velocity range in world units per frame
const (
	SpeedMinInt = -5
	SpeedMaxInt = 5
)

// Pre-computed Q32.32 physics constants
var (
	SpeedMin = vmath.FromInt(SpeedMinInt)
	SpeedMax = vmath.FromInt(SpeedMaxInt)
)
