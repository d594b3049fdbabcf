package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	IntentAdd    // a, space
	IntentReport // b, r
)
