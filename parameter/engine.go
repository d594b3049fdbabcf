package parameter

import "time"

// Display defaults, world units map 1:1 to display pixels
const (
	DisplayWidth  = 240
	DisplayHeight = 160
)

// Frame Pacing
const (
	// DefaultFrameRate is the frame rate when none is configured
	DefaultFrameRate = 60

	// MaxFrameRate caps configured frame rates
	MaxFrameRate = 240

	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = time.Second / DefaultFrameRate

	// EventQueueSize is the buffer between the terminal poller and the frame loop
	EventQueueSize = 256
)

// Default seed for the random source
const DefaultSeed = 0x5EED
