package volume

// Track controls the loop volume of a single sound file. Its sound is only
// loaded and started the first time its gain becomes non-zero; after that it
// keeps looping, silently if muted, until the process exits.
type Track struct {
	level
	Path  string
	Index int

	master *Master
	voice  Voice
}

func newTrack(m *Master, path, name string, index int) *Track {
	t := &Track{
		level:  level{name: name},
		Path:   path,
		Index:  index,
		master: m,
	}
	t.level.apply = t.apply
	return t
}

// Gain returns the effective output level of the track, always computed from
// the current master volume.
func (t *Track) Gain() float64 {
	return Gain(t.master.Volume(), t.Volume())
}

// Active reports whether the sound has been loaded and started.
func (t *Track) Active() bool { return t.voice != nil }

func (t *Track) apply() error {
	gain := t.Gain()
	if t.voice != nil {
		t.voice.SetGain(gain)
		return nil
	}
	if gain <= 0 {
		return nil
	}
	voice, err := t.master.player.Load(t.Path)
	if err != nil {
		return &AssetError{Path: t.Path, Err: err}
	}
	voice.SetGain(gain)
	voice.PlayLoop(t.master.fadeIn)
	t.voice = voice
	return nil
}

// less orders tracks by (index, name).
func (t *Track) less(o *Track) bool {
	if t.Index != o.Index {
		return t.Index < o.Index
	}
	return t.name < o.name
}
