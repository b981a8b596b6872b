package volume

import "fmt"

// AssetError reports a sound file that could not be read or played.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// PresetError reports a preset that could not be read, parsed or written.
type PresetError struct {
	Op   string // "read", "parse" or "write"
	Path string
	Err  error
}

func (e *PresetError) Error() string {
	return fmt.Sprintf("preset %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PresetError) Unwrap() error { return e.Err }
