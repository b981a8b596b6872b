// Package ui contains the terminal widgets: a scrollable list of one line
// widgets with keyboard navigation, and the volume slider shown in it.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region is the rectangle of the screen a widget may paint in. Bottom and
// Right are exclusive.
type Region struct {
	Top, Left, Bottom, Right int
}

func (r Region) Height() int { return max(0, r.Bottom-r.Top) }
func (r Region) Width() int  { return max(0, r.Right-r.Left) }

// Row returns the one line region at offset y from the top.
func (r Region) Row(y int) Region {
	return Region{Top: r.Top + y, Left: r.Left, Bottom: r.Top + y + 1, Right: r.Right}
}

// Inset shrinks the region by h columns and v rows on each side.
func (r Region) Inset(h, v int) Region {
	return Region{Top: r.Top + v, Left: r.Left + h, Bottom: r.Bottom - v, Right: r.Right - h}
}

// Widget is a one line entry of a List.
type Widget interface {
	Draw(s tcell.Screen, r Region, selected bool)
	// HandleAction is called with actions the list did not use for
	// navigation while the widget is selected. It reports whether the action
	// was used.
	HandleAction(a Action) bool
}

// TerminalError reports a failure of the terminal.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string { return fmt.Sprintf("terminal: %v", e.Err) }
func (e *TerminalError) Unwrap() error { return e.Err }

// NewScreen creates and initializes a terminal screen. The caller must call
// Fini to restore the terminal.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &TerminalError{Err: err}
	}
	if err := s.Init(); err != nil {
		return nil, &TerminalError{Err: err}
	}
	s.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))
	s.HideCursor()
	return s, nil
}

// drawText draws text at column x of the first row of r, clipped to r, and
// returns the column after the last cell drawn.
func drawText(s tcell.Screen, r Region, x int, style tcell.Style, text string) int {
	if r.Height() == 0 {
		return x
	}
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if x < r.Left || x+w > r.Right {
			x += w
			continue
		}
		s.SetContent(x, r.Top, c, nil, style)
		x += w
	}
	return x
}

// textWidth is the number of cells text occupies.
func textWidth(text string) int {
	return runewidth.StringWidth(text)
}
