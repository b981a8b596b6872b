package ui

import "github.com/gdamore/tcell/v2"

// Router sends key presses first to the list for navigation and then to the
// selected widget.
type Router struct {
	List   *List
	Keymap *Keymap
}

// Dispatch reports whether the key was used. Keys it returns false for can
// be bound to global actions by the caller.
func (r *Router) Dispatch(ev *tcell.EventKey) bool {
	a := r.Keymap.Lookup(ev)
	if a == ActionNone {
		return false
	}
	if r.List.Navigate(a) {
		return true
	}
	if w := r.List.Selected(); w != nil {
		return w.HandleAction(a)
	}
	return false
}
