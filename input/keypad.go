package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keypad latches key intents between frames
// Each trigger reads true at most once per press and is cleared by the read
type Keypad struct {
	keyTable *KeyTable
	add      bool
	report   bool
}

// NewKeypad creates a keypad with the default key table
func NewKeypad() *Keypad {
	return &Keypad{keyTable: DefaultKeyTable()}
}

// HandleEvent records the intent of ev and returns it; callers stop on IntentQuit
func (k *Keypad) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := k.keyTable.Lookup(ev)
		switch intent {
		case IntentAdd:
			k.add = true
		case IntentReport:
			k.report = true
		}
		return intent
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// AddRequested reports and clears a pending add
func (k *Keypad) AddRequested() bool {
	v := k.add
	k.add = false
	return v
}

// ReportRequested reports and clears a pending report
func (k *Keypad) ReportRequested() bool {
	v := k.report
	k.report = false
	return v
}
