package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bouncers/parameter"
)

const sampleRate = beep.SampleRate(parameter.ChimeSampleRate)

// Chime plays a short tone when a bouncer is added
// All methods are no-ops until Initialize succeeds
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{}
}

// Initialize opens the speaker
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.ChimeBuffer)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Play queues one chime
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := newTone(parameter.ChimeFrequency)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// newTone returns a sine tone of ChimeDuration length
func newTone(freq int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(parameter.ChimeDuration), sine), nil
}
