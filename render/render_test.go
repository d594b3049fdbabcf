package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncers/core"
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/status"
	"github.com/lixenwraith/bouncers/vmath"
)

var testBounds = core.BoundsFromHalfExtents(120, 80)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSpriteSurfaceDefaultPlacement(t *testing.T) {
	s := NewSpriteSurface()
	v := s.Create()
	x, y := v.Position()
	if x != 0 || y != 0 {
		t.Errorf("default placement = (%d, %d), want origin", x, y)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestSpriteSurfaceDestroy(t *testing.T) {
	s := NewSpriteSurface()
	a := s.Create()
	b := s.Create()
	a.Destroy()
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	s.Live(func(sp *Sprite) {
		if sp != b {
			t.Error("destroyed sprite still live")
		}
	})
}

func TestCellForCorners(t *testing.T) {
	screen := newTestScreen(t, 81, 42)
	r := NewTerminalRenderer(screen, NewSpriteSurface(), testBounds, nil, false)

	tests := []struct {
		name     string
		x, y     int64
		col, row int
	}{
		{"top-left", testBounds.MinX, testBounds.MinY, 0, 0},
		{"bottom-right", testBounds.MaxX, testBounds.MaxY, 80, 40},
		{"center", 0, 0, 40, 20},
		{"outside clamps", vmath.FromInt(500), vmath.FromInt(-500), 80, 0},
	}
	for _, tt := range tests {
		col, row, ok := r.CellFor(tt.x, tt.y)
		if !ok || col != tt.col || row != tt.row {
			t.Errorf("%s: CellFor = (%d, %d, %v), want (%d, %d, true)", tt.name, col, row, ok, tt.col, tt.row)
		}
	}
}

func TestCellForTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 1)
	r := NewTerminalRenderer(screen, NewSpriteSurface(), testBounds, nil, false)
	if _, _, ok := r.CellFor(0, 0); ok {
		t.Error("expected no play area when only the status row fits")
	}
}

func TestPresentDrawsSprites(t *testing.T) {
	screen := newTestScreen(t, 81, 42)
	surface := NewSpriteSurface()
	metrics := status.NewRegistry()
	metrics.Ints.Get(parameter.MetricBouncers).Store(2)
	r := NewTerminalRenderer(screen, surface, testBounds, metrics, false)

	avg := surface.Create()
	other := surface.Create()
	other.SetPosition(testBounds.MaxX, testBounds.MaxY)
	_ = avg

	r.Present()

	if ch, _, _, _ := screen.GetContent(40, 20); ch != parameter.AverageGlyph {
		t.Errorf("center cell = %q, want average glyph", ch)
	}
	if ch, _, _, _ := screen.GetContent(80, 40); ch != parameter.BouncerGlyph {
		t.Errorf("corner cell = %q, want bouncer glyph", ch)
	}

	var bar strings.Builder
	for x := 0; x < 81; x++ {
		ch, _, _, _ := screen.GetContent(x, 41)
		bar.WriteRune(ch)
	}
	if !strings.Contains(bar.String(), "bouncers=2") {
		t.Errorf("status bar %q missing bouncer count", bar.String())
	}
}

func TestPresentAverageOnTop(t *testing.T) {
	screen := newTestScreen(t, 81, 42)
	surface := NewSpriteSurface()
	r := NewTerminalRenderer(screen, surface, testBounds, nil, true)
	surface.Create()
	surface.Create()

	r.Present()

	if ch, _, _, _ := screen.GetContent(40, 20); ch != parameter.AverageGlyph {
		t.Errorf("overlapping cell = %q, want average glyph", ch)
	}
}

func TestResize(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	r := NewTerminalRenderer(screen, NewSpriteSurface(), testBounds, nil, false)
	screen.SetSize(81, 42)
	r.Resize()
	if col, row, _ := r.CellFor(testBounds.MaxX, testBounds.MaxY); col != 80 || row != 40 {
		t.Errorf("after resize CellFor = (%d, %d), want (80, 40)", col, row)
	}
}
