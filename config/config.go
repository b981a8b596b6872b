// Package config loads the program configuration: built-in defaults from the
// embedded config.yml, overlaid with the user's config.yml if there is one.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory below the user config and cache directories.
	AppDir   = "ambientsounds"
	FileName = "config.yml"
)

type Config struct {
	SoundDirs  []string      `yaml:"sound_dirs"`
	Extensions []string      `yaml:"extensions"`
	Preset     string        `yaml:"preset"`
	FadeIn     time.Duration `yaml:"fade_in"`
	Step       int           `yaml:"step"`
	BigStep    int           `yaml:"big_step"`
	Output     string        `yaml:"output"`
	SampleRate int           `yaml:"sample_rate"`
	Keys       []KeyBinding  `yaml:"keys"`
}

// KeyBinding binds a key to a named action. Key is either a tcell key name
// such as "PgUp" or "Ctrl-C", or a single character. User bindings are added
// after the defaults, so they win; an empty action unbinds the key.
type KeyBinding struct {
	Key    string `yaml:"key"`
	Shift  bool   `yaml:"shift,omitempty"`
	Ctrl   bool   `yaml:"ctrl,omitempty"`
	Alt    bool   `yaml:"alt,omitempty"`
	Action string `yaml:"action"`
}

//go:embed config.yml
var defaultConfig []byte

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir), nil
}

// Load reads the defaults and the user configuration, if present.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, FileName)
	user, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg, err := parse(defaultConfig, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	exe, err := os.Executable()
	if err != nil {
		exe = "."
	}
	cfg.resolvePaths(filepath.Dir(exe), dir)
	return cfg, nil
}

func parse(defaults, user []byte) (*Config, error) {
	var cfg Config
	if err := decode(defaults, &cfg); err != nil {
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}
	keys := cfg.Keys
	cfg.Keys = nil
	if err := decode(user, &cfg); err != nil {
		return nil, err
	}
	cfg.Keys = append(keys, cfg.Keys...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Output {
	case "portaudio", "oto":
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.FadeIn < 0 {
		return fmt.Errorf("negative fade-in %v", c.FadeIn)
	}
	if c.Step <= 0 || c.BigStep <= 0 {
		return fmt.Errorf("volume steps must be positive")
	}
	return nil
}

// resolvePaths expands "~" and makes relative sound directories relative to
// base. An empty preset path defaults to preset.yml in configDir.
func (c *Config) resolvePaths(base, configDir string) {
	home, _ := os.UserHomeDir()
	expand := func(p string) string {
		if home != "" && (p == "~" || strings.HasPrefix(p, "~/")) {
			p = filepath.Join(home, p[1:])
		}
		return p
	}
	for i, dir := range c.SoundDirs {
		dir = expand(dir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		c.SoundDirs[i] = dir
	}
	if c.Preset == "" {
		c.Preset = filepath.Join(configDir, "preset.yml")
	}
	c.Preset = expand(c.Preset)
}
