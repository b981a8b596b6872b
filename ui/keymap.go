package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mrdg/ambient/config"
)

type Action string

const (
	ActionNone          Action = ""
	ActionUp            Action = "up"
	ActionDown          Action = "down"
	ActionPageUp        Action = "page-up"
	ActionPageDown      Action = "page-down"
	ActionFirst         Action = "first"
	ActionLast          Action = "last"
	ActionVolumeDown    Action = "volume-down"
	ActionVolumeUp      Action = "volume-up"
	ActionVolumeDownBig Action = "volume-down-big"
	ActionVolumeUpBig   Action = "volume-up-big"
	ActionMute          Action = "mute"
	ActionSavePreset    Action = "save-preset"
	ActionQuit          Action = "quit"
)

var actions = map[Action]bool{
	ActionUp: true, ActionDown: true, ActionPageUp: true, ActionPageDown: true,
	ActionFirst: true, ActionLast: true, ActionVolumeDown: true, ActionVolumeUp: true,
	ActionVolumeDownBig: true, ActionVolumeUpBig: true, ActionMute: true,
	ActionSavePreset: true, ActionQuit: true,
}

type keyCombo struct {
	key  tcell.Key
	r    rune
	mods tcell.ModMask
}

// Keymap maps key presses to actions.
type Keymap struct {
	bindings map[keyCombo]Action
}

var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// NewKeymap builds a keymap from bindings. Later bindings replace earlier ones
// for the same key and a binding with an empty action removes the key.
func NewKeymap(bindings []config.KeyBinding) (*Keymap, error) {
	km := &Keymap{bindings: make(map[keyCombo]Action)}
	for _, b := range bindings {
		combo, err := parseKey(b)
		if err != nil {
			return nil, err
		}
		action := Action(b.Action)
		if action == ActionNone {
			delete(km.bindings, combo)
			continue
		}
		if !actions[action] {
			return nil, fmt.Errorf("key %q: unknown action %q", b.Key, b.Action)
		}
		km.bindings[combo] = action
	}
	return km, nil
}

func parseKey(b config.KeyBinding) (keyCombo, error) {
	var combo keyCombo
	if b.Shift {
		combo.mods |= tcell.ModShift
	}
	if b.Ctrl {
		combo.mods |= tcell.ModCtrl
	}
	if b.Alt {
		combo.mods |= tcell.ModAlt
	}
	if utf8.RuneCountInString(b.Key) == 1 {
		combo.key = tcell.KeyRune
		combo.r, _ = utf8.DecodeRuneInString(b.Key)
		return combo, nil
	}
	k, ok := keysByName[strings.ToLower(b.Key)]
	if !ok {
		return combo, fmt.Errorf("unknown key %q", b.Key)
	}
	combo.key = k
	return combo, nil
}

// Lookup returns the action bound to the key event, or ActionNone.
func (km *Keymap) Lookup(ev *tcell.EventKey) Action {
	combo := keyCombo{key: ev.Key(), mods: ev.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt)}
	if combo.key == tcell.KeyRune {
		combo.r = ev.Rune()
		// the case of a rune already carries shift
		combo.mods &^= tcell.ModShift
	}
	if a, ok := km.bindings[combo]; ok {
		return a
	}
	// control keys such as Ctrl-C are reported with ModCtrl set
	combo.mods &^= tcell.ModCtrl
	return km.bindings[combo]
}
