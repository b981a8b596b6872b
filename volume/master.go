package volume

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const MasterName = "Master"

// Master scales the volume of every track it owns.
type Master struct {
	level
	tracks []*Track
	player Player
	fadeIn time.Duration
}

type Option func(*Master)

// WithFadeIn sets the ramp used when a track starts playing.
func WithFadeIn(d time.Duration) Option {
	return func(m *Master) { m.fadeIn = d }
}

func NewMaster(player Player, opts ...Option) *Master {
	m := &Master{
		level:  level{name: MasterName, percent: MaxVolume},
		player: player,
	}
	m.level.apply = m.apply
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// apply recomputes the gain of every track. A track that fails to start does
// not prevent the others from being updated.
func (m *Master) apply() error {
	var errs []error
	for _, t := range m.tracks {
		if err := t.apply(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Master) Tracks() []*Track { return m.tracks }

func (m *Master) Track(name string) (*Track, bool) {
	for _, t := range m.tracks {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// AddTrack adds a track at volume 0. A track with the same name replaces the
// existing one in place.
func (m *Master) AddTrack(path, name string, index int) *Track {
	t := newTrack(m, path, name, index)
	for i, old := range m.tracks {
		if old.name == name {
			log.Printf("volume: %s replaces %s", path, old.Path)
			m.tracks[i] = t
			return t
		}
	}
	m.tracks = append(m.tracks, t)
	return t
}

// Discover adds a track for each sound file found in dirs, then sorts all
// tracks by (index, name) and sizes the player's channels to fit them.
// Directories are scanned in order so that a later directory overrides an
// earlier one for tracks with the same name. Missing directories are skipped.
func (m *Master) Discover(dirs, exts []string, md Metadata) error {
	var errs []error
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, &AssetError{Path: dir, Err: err})
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !hasExt(e.Name(), exts) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			name, ok := md.Title(path)
			if !ok {
				name = DisplayName(path)
			}
			index, _ := md.TrackIndex(path)
			m.AddTrack(path, name, index)
		}
	}
	slices.SortStableFunc(m.tracks, func(a, b *Track) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	m.player.SetChannelCapacity(len(m.tracks))
	return errors.Join(errs...)
}

// DisplayName derives a track name from a file name.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func hasExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// PresetStore persists presets.
type PresetStore interface {
	Read() (Preset, error)
	Write(Preset) error
}

// SavePreset records the current track volumes into the store. Entries for
// names that are not currently loaded are kept.
func (m *Master) SavePreset(store PresetStore) error {
	p, err := store.Read()
	if errors.Is(err, os.ErrNotExist) {
		p, err = Preset{}, nil
	}
	if err != nil {
		return err
	}
	return store.Write(Capture(m, p))
}

// LoadPreset reads a preset from the store and applies it.
func (m *Master) LoadPreset(store PresetStore) error {
	p, err := store.Read()
	if err != nil {
		return err
	}
	if err := p.Apply(m); err != nil {
		return fmt.Errorf("apply preset: %w", err)
	}
	return nil
}
