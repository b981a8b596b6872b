// Package volume implements the cascaded volume model: a master control scaling
// any number of independent track controls.
package volume

import "time"

const (
	MinVolume = 0
	MaxVolume = 100
)

// Control is a named volume that can be changed from the UI. Both *Track and
// *Master implement it.
type Control interface {
	Name() string
	Volume() int
	SetVolume(v int) error
	AdjustVolume(delta int) error
}

// Player is the audio backend used to produce sound.
type Player interface {
	Load(path string) (Voice, error)
	// SetChannelCapacity is called once, before any voice is played.
	SetChannelCapacity(n int)
}

// Voice is a loaded sound owned by the Player.
type Voice interface {
	PlayLoop(fadeIn time.Duration)
	SetGain(gain float64)
}

// Metadata reads the display name and sort index of a sound file.
type Metadata interface {
	Title(path string) (string, bool)
	TrackIndex(path string) (int, bool)
}

// level holds the state shared by every control. apply pushes the current
// value to the sound output and is called on every write.
type level struct {
	name    string
	percent int
	apply   func() error
}

func (l *level) Name() string { return l.name }
func (l *level) Volume() int  { return l.percent }

func (l *level) SetVolume(v int) error {
	l.percent = clamp(v)
	return l.apply()
}

func (l *level) AdjustVolume(delta int) error {
	return l.SetVolume(l.percent + delta)
}

func clamp(v int) int {
	return max(MinVolume, min(v, MaxVolume))
}

// Gain returns the linear output level for a master and track percentage.
func Gain(master, track int) float64 {
	return float64(clamp(master)*clamp(track)) / 10000
}
