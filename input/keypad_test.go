package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeypadIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"add", runeEvent('a'), IntentAdd},
		{"add space", runeEvent(' '), IntentAdd},
		{"report", runeEvent('b'), IntentReport},
		{"report alt", runeEvent('r'), IntentReport},
		{"quit rune", runeEvent('q'), IntentQuit},
		{"quit esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound", runeEvent('z'), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		k := NewKeypad()
		if got := k.HandleEvent(tt.ev); got != tt.want {
			t.Errorf("%s: HandleEvent = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestKeypadEdgeTriggered(t *testing.T) {
	k := NewKeypad()
	k.HandleEvent(runeEvent('a'))
	k.HandleEvent(runeEvent('a'))

	if !k.AddRequested() {
		t.Fatal("expected add after press")
	}
	if k.AddRequested() {
		t.Error("add must clear after being read")
	}
	if k.ReportRequested() {
		t.Error("report never pressed")
	}
}

func TestKeypadTriggersIndependent(t *testing.T) {
	k := NewKeypad()
	k.HandleEvent(runeEvent('b'))
	if k.AddRequested() {
		t.Error("report press must not request add")
	}
	if !k.ReportRequested() {
		t.Error("expected report")
	}
}
