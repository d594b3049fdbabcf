package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncers/parameter"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			parameter.KeyAdd:       IntentAdd,
			parameter.KeyAddAlt:    IntentAdd,
			parameter.KeyReport:    IntentReport,
			parameter.KeyReportAlt: IntentReport,
			parameter.KeyQuit:      IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
