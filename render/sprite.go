package render

import "github.com/lixenwraith/bouncers/bouncer"

// Sprite is a point visual positioned in world coordinates (Q32.32)
type Sprite struct {
	x, y  int64
	alive bool
}

func (s *Sprite) Position() (int64, int64) { return s.x, s.y }

func (s *Sprite) SetPosition(x, y int64) {
	s.x, s.y = x, y
}

// Destroy hides the sprite permanently
func (s *Sprite) Destroy() {
	s.alive = false
}

// SpriteSurface creates sprites at the origin and keeps them in creation order
type SpriteSurface struct {
	sprites []*Sprite
}

var _ bouncer.Surface = (*SpriteSurface)(nil)

func NewSpriteSurface() *SpriteSurface {
	return &SpriteSurface{}
}

// Create returns a live sprite at the default placement (0, 0)
func (s *SpriteSurface) Create() bouncer.Visual {
	sp := &Sprite{alive: true}
	s.sprites = append(s.sprites, sp)
	return sp
}

// Live calls fn for each live sprite in creation order
func (s *SpriteSurface) Live(fn func(sp *Sprite)) {
	for _, sp := range s.sprites {
		if sp.alive {
			fn(sp)
		}
	}
}

// Count returns the number of live sprites
func (s *SpriteSurface) Count() int {
	n := 0
	for _, sp := range s.sprites {
		if sp.alive {
			n++
		}
	}
	return n
}
