package parameter

// Layout & Margins
const (
	// BottomMargin for status bar
	BottomMargin = 1
)

// Glyphs
const (
	BouncerGlyph = '•'
	AverageGlyph = '◆'
)

// Key bindings
const (
	KeyAdd       = 'a'
	KeyAddAlt    = ' '
	KeyReport    = 'b'
	KeyReportAlt = 'r'
	KeyQuit      = 'q'
)

// Report labels
const (
	LabelAverageX = "Average x: "
)

// Metric keys published to the status registry
const (
	MetricFrame     = "frame"
	MetricBouncers  = "bouncers"
	MetricCentroidX = "centroid.x"
	MetricCentroidY = "centroid.y"
	MetricReportVX  = "report.avg_vx"
)
