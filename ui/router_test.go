package ui

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mrdg/ambient/config"
)

func testKeymap(t *testing.T) *Keymap {
	t.Helper()
	km, err := NewKeymap([]config.KeyBinding{
		{Key: "Up", Action: "up"},
		{Key: "Down", Action: "down"},
		{Key: "Home", Action: "first"},
		{Key: "Left", Action: "volume-down"},
		{Key: "Right", Action: "volume-up"},
		{Key: "q", Action: "quit"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return km
}

func TestRouterNavigationFirst(t *testing.T) {
	es := entries("A_B")
	l := &List{}
	l.SetEntries(es, 2)
	r := &Router{List: l, Keymap: testKeymap(t)}

	if !r.Dispatch(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatalf("up should be consumed by navigation")
	}
	if want, got := 0, l.Selection(); want != got {
		t.Errorf("want selection %d, got %d", want, got)
	}
	if a := es[0].(*testWidget).actions; len(a) != 0 {
		t.Errorf("navigation keys should not reach the widget, got %v", a)
	}
}

func TestRouterForwardsToSelected(t *testing.T) {
	es := entries("AB")
	l := &List{}
	l.SetEntries(es, 1)
	r := &Router{List: l, Keymap: testKeymap(t)}
	a, b := es[0].(*testWidget), es[1].(*testWidget)
	b.handles = true

	if !r.Dispatch(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Errorf("right should be consumed by the widget")
	}
	if want, got := []Action{ActionVolumeUp}, b.actions; !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
	if len(a.actions) != 0 {
		t.Errorf("unselected widget got %v", a.actions)
	}

	b.handles = false
	if r.Dispatch(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Errorf("quit is not handled by the list or the widget")
	}
	if want, got := []Action{ActionVolumeUp, ActionQuit}, b.actions; !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}

	if r.Dispatch(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Errorf("unbound keys should not be consumed")
	}
	if want, got := 2, len(b.actions); want != got {
		t.Errorf("unbound keys should not reach the widget")
	}
}

func TestRouterEmptyList(t *testing.T) {
	r := &Router{List: &List{}, Keymap: testKeymap(t)}
	if !r.Dispatch(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone)) {
		t.Errorf("navigation on an empty list is still navigation")
	}
	if r.Dispatch(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)) {
		t.Errorf("no widget to consume left")
	}
}
