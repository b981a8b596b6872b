package ui

import "github.com/gdamore/tcell/v2"

// List is a scrollable list of one line widgets. A nil entry is a placeholder:
// it is drawn as an empty line and can never be selected, unless every entry
// is a placeholder.
type List struct {
	entries   []Widget
	selection int
	top       int
	height    int // visible rows, as of the last draw
}

// SetEntries replaces the entries and selects the entry at selected.
func (l *List) SetEntries(entries []Widget, selected int) {
	l.entries = entries
	l.SetSelection(selected)
}

func (l *List) Len() int { return len(l.entries) }

// Selection returns the index of the selected entry.
func (l *List) Selection() int { return l.selection }

// Selected returns the selected widget, or nil if the list is empty or only
// contains placeholders.
func (l *List) Selected() Widget {
	if l.selection < 0 || l.selection >= len(l.entries) {
		return nil
	}
	return l.entries[l.selection]
}

// Top returns the index of the first visible entry.
func (l *List) Top() int { return l.top }

// SetSelection selects entry i, clamped to the list. If it is a placeholder
// the closest entry before it is selected, or failing that the first entry
// after it.
func (l *List) SetSelection(i int) {
	n := len(l.entries)
	i = max(0, min(i, n-1))
	for i >= 0 && i < n && l.entries[i] == nil {
		i--
	}
	if i < 0 {
		i = 0
		for i < n && l.entries[i] == nil {
			i++
		}
		if i >= n {
			i = 0
		}
	}
	l.selection = i
	l.scroll()
}

// SelectNext selects the first entry after the selection that is not a
// placeholder. Past the end the last selectable entry stays selected.
func (l *List) SelectNext() {
	i := l.selection + 1
	for i < len(l.entries) && l.entries[i] == nil {
		i++
	}
	l.SetSelection(i)
}

// SelectPrevious selects the first entry before the selection that is not a
// placeholder. Past the start the first selectable entry stays selected.
func (l *List) SelectPrevious() {
	i := l.selection - 1
	for i >= 0 && l.entries[i] == nil {
		i--
	}
	l.SetSelection(i)
}

func (l *List) SelectFirst() { l.SetSelection(0) }
func (l *List) SelectLast()  { l.SetSelection(len(l.entries) - 1) }

func (l *List) PageUp()   { l.SetSelection(l.selection - l.page()) }
func (l *List) PageDown() { l.SetSelection(l.selection + l.page()) }

func (l *List) page() int { return max(1, l.height-1) }

// Navigate performs a navigation action and reports whether a was one.
func (l *List) Navigate(a Action) bool {
	switch a {
	case ActionUp:
		l.SelectPrevious()
	case ActionDown:
		l.SelectNext()
	case ActionPageUp:
		l.PageUp()
	case ActionPageDown:
		l.PageDown()
	case ActionFirst:
		l.SelectFirst()
	case ActionLast:
		l.SelectLast()
	default:
		return false
	}
	return true
}

// SetHeight sets the number of visible rows and scrolls so that the
// selection stays visible.
func (l *List) SetHeight(h int) {
	l.height = max(0, h)
	l.scroll()
}

// scroll centers the viewport on the selection as far as the list allows.
func (l *List) scroll() {
	l.top = max(0, min(l.selection-l.height/2, len(l.entries)-l.height))
}

// Draw paints the visible entries, one per row of r.
func (l *List) Draw(s tcell.Screen, r Region) {
	if r.Height() != l.height {
		l.SetHeight(r.Height())
	}
	for y := 0; y < l.height; y++ {
		i := l.top + y
		if i >= len(l.entries) {
			break
		}
		if w := l.entries[i]; w != nil {
			w.Draw(s, r.Row(y), i == l.selection)
		}
	}
}
