package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mrdg/ambient/ui"
)

// Screens at most this size get a one cell margin instead of the roomy one.
const (
	compactRows = 13
	compactCols = 60
)

func contentRegion(s tcell.Screen) ui.Region {
	w, h := s.Size()
	r := ui.Region{Right: w, Bottom: h}
	if h > compactRows && w > compactCols {
		return r.Inset(5, 3)
	}
	return r.Inset(1, 1)
}

func (a *app) render() {
	s := a.screen
	s.Clear()
	r := contentRegion(s)
	if a.status.Text != "" && r.Height() > 1 {
		// errors can span several lines, the status line only shows the first
		status := a.status
		status.Text, _, _ = strings.Cut(status.Text, "\n")
		status.Draw(s, r.Row(r.Height()-1))
		r.Bottom -= 2
	}
	a.list.Draw(s, r)
	s.Show()
}

func showLoading(s tcell.Screen) {
	s.Clear()
	ui.Message{Text: "Loading sounds..."}.Draw(s, contentRegion(s))
	s.Show()
}
