package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncers/core"
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/status"
	"github.com/lixenwraith/bouncers/vmath"
)

const helpText = " a:add  b:report  q:quit "

// TerminalRenderer draws the sprite surface onto a tcell screen, scaling the world bounds to the cell grid
type TerminalRenderer struct {
	screen  tcell.Screen
	surface *SpriteSurface
	bounds  core.Bounds
	metrics *status.Registry
	palette Palette
	width   int
	height  int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, surface *SpriteSurface, bounds core.Bounds, metrics *status.Registry, monochrome bool) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:  screen,
		surface: surface,
		bounds:  bounds,
		metrics: metrics,
		palette: NewPalette(monochrome),
	}
	r.width, r.height = screen.Size()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

// Present renders one frame and flushes it to the terminal
func (r *TerminalRenderer) Present() {
	r.screen.SetStyle(r.palette.Background)
	r.screen.Clear()

	// Average sprite is drawn last so it stays visible when overlapping
	var average *Sprite
	r.surface.Live(func(sp *Sprite) {
		if average == nil {
			average = sp
			return
		}
		if col, row, ok := r.CellFor(sp.Position()); ok {
			r.screen.SetContent(col, row, parameter.BouncerGlyph, nil, r.palette.Bouncer)
		}
	})
	if average != nil {
		if col, row, ok := r.CellFor(average.Position()); ok {
			r.screen.SetContent(col, row, parameter.AverageGlyph, nil, r.palette.Average)
		}
	}

	r.drawStatusBar()
	r.screen.Show()
}

// CellFor maps a world position onto the play area, excluding the status bar rows
func (r *TerminalRenderer) CellFor(x, y int64) (col, row int, ok bool) {
	playW := r.width
	playH := r.height - parameter.BottomMargin
	if playW < 1 || playH < 1 {
		return 0, 0, false
	}
	col = vmath.ToInt(vmath.MulDiv(x-r.bounds.MinX, vmath.FromInt(playW-1), r.bounds.Width()))
	row = vmath.ToInt(vmath.MulDiv(y-r.bounds.MinY, vmath.FromInt(playH-1), r.bounds.Height()))
	return clamp(col, 0, playW-1), clamp(row, 0, playH-1), true
}

func (r *TerminalRenderer) drawStatusBar() {
	if r.height < 1 {
		return
	}
	row := r.height - 1
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, row, ' ', nil, r.palette.StatusBar)
	}

	text := helpText
	if r.metrics != nil {
		text += " " + strings.Join(r.metrics.Snapshot(), "  ")
	}
	x := 0
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, r.palette.StatusBar)
		x++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
