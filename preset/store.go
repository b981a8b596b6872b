// Package preset stores track volumes in a flat YAML file mapping track names
// to volumes.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrdg/ambient/volume"
	"gopkg.in/yaml.v3"
)

// FileStore reads and writes a preset at Path.
type FileStore struct {
	Path string
}

// Read returns a *volume.PresetError when the file is missing, unreadable, or
// does not contain a mapping of names to volumes between 0 and 100.
func (s FileStore) Read() (volume.Preset, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &volume.PresetError{Op: "read", Path: s.Path, Err: err}
	}
	p, err := parse(b)
	if err != nil {
		return nil, &volume.PresetError{Op: "parse", Path: s.Path, Err: err}
	}
	return p, nil
}

func parse(b []byte) (volume.Preset, error) {
	p := volume.Preset{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&p); err != nil {
		// an empty file is an empty preset
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Write replaces the file with p, creating its directory if needed.
func (s FileStore) Write(p volume.Preset) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return &volume.PresetError{Op: "write", Path: s.Path, Err: err}
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return &volume.PresetError{Op: "write", Path: s.Path, Err: fmt.Errorf("encode: %w", err)}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &volume.PresetError{Op: "write", Path: s.Path, Err: err}
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return &volume.PresetError{Op: "write", Path: s.Path, Err: err}
	}
	return nil
}
