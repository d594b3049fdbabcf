package parameter

import "time"

// Insertion chime
const (
	ChimeSampleRate = 44100
	ChimeFrequency  = 880
	ChimeDuration   = 50 * time.Millisecond
	ChimeBuffer     = 100 * time.Millisecond
)
