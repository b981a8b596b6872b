package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mrdg/ambient/volume"
)

var styleSelected = tcell.StyleDefault.Reverse(true)

// Slider shows and changes a volume control:
//
//	 Rain     [ ########------------ ]
type Slider struct {
	Control   volume.Control
	NameWidth int // width of the name column, shared by all sliders of a list
	Step      int
	BigStep   int
	// OnError receives errors from changing the volume.
	OnError   func(error)
}

// NameWidth returns the name column width that fits every control.
func NameWidth(controls ...volume.Control) int {
	var w int
	for _, c := range controls {
		w = max(w, textWidth(c.Name()))
	}
	return w
}

func (sl *Slider) Draw(s tcell.Screen, r Region, selected bool) {
	style := tcell.StyleDefault
	if selected {
		style = styleSelected
	}
	drawText(s, r, r.Left, style, " "+sl.Control.Name()+" ")

	x := r.Left + sl.NameWidth + 5
	width := r.Right - x - 3
	if width < 1 {
		return
	}
	filled := sl.Control.Volume() * width / volume.MaxVolume
	drawText(s, r, x-2, tcell.StyleDefault, "[ ")
	drawText(s, r, x, tcell.StyleDefault, strings.Repeat("#", filled)+strings.Repeat("-", width-filled))
	drawText(s, r, x+width, tcell.StyleDefault, " ]")
}

func (sl *Slider) HandleAction(a Action) bool {
	var err error
	switch a {
	case ActionVolumeDown:
		err = sl.Control.AdjustVolume(-sl.Step)
	case ActionVolumeUp:
		err = sl.Control.AdjustVolume(sl.Step)
	case ActionVolumeDownBig:
		err = sl.Control.AdjustVolume(-sl.BigStep)
	case ActionVolumeUpBig:
		err = sl.Control.AdjustVolume(sl.BigStep)
	case ActionMute:
		err = sl.Control.SetVolume(volume.MinVolume)
	default:
		return false
	}
	if err != nil && sl.OnError != nil {
		sl.OnError(err)
	}
	return true
}
