package ui

import "github.com/gdamore/tcell/v2"

var styleError = tcell.StyleDefault.Foreground(tcell.ColorRed)

// Message is a line of text centered in its region.
type Message struct {
	Text  string
	Error bool
}

func (m Message) Draw(s tcell.Screen, r Region) {
	if m.Text == "" || r.Height() == 0 {
		return
	}
	style := tcell.StyleDefault
	if m.Error {
		style = styleError
	}
	x := r.Left + max(0, (r.Width()-textWidth(m.Text))/2)
	y := r.Top + (r.Height()-1)/2
	drawText(s, r.Row(y-r.Top), x, style, m.Text)
}
