package render

import (
	"github.com/gdamore/tcell/v2"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Dark background
	RgbBouncer    = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbAverage    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(40, 40, 60)
)

// Palette holds the styles used for one frame
type Palette struct {
	Background tcell.Style
	Bouncer    tcell.Style
	Average    tcell.Style
	StatusBar  tcell.Style
}

// NewPalette returns the color palette, or plain attribute styles when monochrome
func NewPalette(monochrome bool) Palette {
	if monochrome {
		return Palette{
			Background: tcell.StyleDefault,
			Bouncer:    tcell.StyleDefault,
			Average:    tcell.StyleDefault.Bold(true),
			StatusBar:  tcell.StyleDefault.Reverse(true),
		}
	}
	bg := tcell.StyleDefault.Background(RgbBackground)
	return Palette{
		Background: bg,
		Bouncer:    bg.Foreground(RgbBouncer),
		Average:    bg.Foreground(RgbAverage).Bold(true),
		StatusBar:  tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg),
	}
}
