package volume

import (
	"errors"
	"fmt"
)

// Preset maps track names to volumes. Tracks at volume 0 are not stored.
type Preset map[string]int

// Capture records the volume of every track of m into p, removing the entries
// of tracks at 0, and returns p. Entries for other names are left untouched.
func Capture(m *Master, p Preset) Preset {
	if p == nil {
		p = make(Preset)
	}
	for _, t := range m.Tracks() {
		if v := t.Volume(); v > 0 {
			p[t.name] = v
		} else {
			delete(p, t.name)
		}
	}
	return p
}

// Apply sets the volume of every track of m to its value in p. Tracks missing
// from p are set to 0.
func (p Preset) Apply(m *Master) error {
	var errs []error
	for _, t := range m.Tracks() {
		if err := t.SetVolume(p[t.name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate reports entries outside the volume range.
func (p Preset) Validate() error {
	for name, v := range p {
		if v < MinVolume || v > MaxVolume {
			return fmt.Errorf("volume of %q out of range %d-%d: %d", name, MinVolume, MaxVolume, v)
		}
	}
	return nil
}
