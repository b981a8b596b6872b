package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := parse(defaultConfig, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 2*time.Second, cfg.FadeIn; want != got {
		t.Errorf("FadeIn = %v, want %v", got, want)
	}
	if want, got := []string{".ogg", ".wav"}, cfg.Extensions; !reflect.DeepEqual(want, got) {
		t.Errorf("Extensions = %v, want %v", got, want)
	}
	if cfg.Step != 1 || cfg.BigStep != 10 {
		t.Errorf("steps = %d/%d, want 1/10", cfg.Step, cfg.BigStep)
	}
	if want, got := "portaudio", cfg.Output; want != got {
		t.Errorf("Output = %q, want %q", got, want)
	}
	if len(cfg.SoundDirs) != 3 {
		t.Errorf("expected 3 sound dirs, got %v", cfg.SoundDirs)
	}
	if len(cfg.Keys) == 0 {
		t.Errorf("expected default key bindings")
	}
}

func TestUserOverrides(t *testing.T) {
	user := []byte(`
fade_in: 500ms
output: oto
sound_dirs: [/srv/sounds]
keys:
  - {key: x, action: quit}
`)
	defaults, err := parse(defaultConfig, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(defaultConfig, user)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 500*time.Millisecond, cfg.FadeIn; want != got {
		t.Errorf("FadeIn = %v, want %v", got, want)
	}
	if want, got := "oto", cfg.Output; want != got {
		t.Errorf("Output = %q, want %q", got, want)
	}
	if want, got := []string{"/srv/sounds"}, cfg.SoundDirs; !reflect.DeepEqual(want, got) {
		t.Errorf("SoundDirs = %v, want %v", got, want)
	}
	if want, got := len(defaults.Keys)+1, len(cfg.Keys); want != got {
		t.Fatalf("want %d key bindings, got %d", want, got)
	}
	if want, got := (KeyBinding{Key: "x", Action: "quit"}), cfg.Keys[len(cfg.Keys)-1]; want != got {
		t.Errorf("user binding should come last: want %+v, got %+v", want, got)
	}
	if want, got := 1, cfg.Step; want != got {
		t.Errorf("unset fields should keep defaults: Step = %d, want %d", got, want)
	}
}

func TestInvalidConfig(t *testing.T) {
	for _, user := range []string{
		"volume: 3\n",
		"output: alsa\n",
		"sample_rate: 0\n",
		"step: -1\n",
		"fade_in: soon\n",
		"fade_in: -1s\n",
	} {
		if _, err := parse(defaultConfig, []byte(user)); err == nil {
			t.Errorf("%q: expected an error", user)
		}
	}
}

func TestResolvePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := &Config{SoundDirs: []string{"sounds", "/usr/share/ambientsounds/sounds", "~/.config/ambientsounds/sounds"}}
	cfg.resolvePaths("/opt/ambient", "/cfg/ambientsounds")

	want := []string{
		"/opt/ambient/sounds",
		"/usr/share/ambientsounds/sounds",
		filepath.Join(home, ".config/ambientsounds/sounds"),
	}
	if !reflect.DeepEqual(want, cfg.SoundDirs) {
		t.Errorf("wrong sound dirs:\nwant: %v\ngot:  %v", want, cfg.SoundDirs)
	}
	if want, got := "/cfg/ambientsounds/preset.yml", cfg.Preset; want != got {
		t.Errorf("Preset = %q, want %q", got, want)
	}
}

func TestLoadReadsUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	appDir := filepath.Join(dir, AppDir)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, FileName), []byte("big_step: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 5, cfg.BigStep; want != got {
		t.Errorf("BigStep = %d, want %d", got, want)
	}
	if want, got := filepath.Join(appDir, "preset.yml"), cfg.Preset; want != got {
		t.Errorf("Preset = %q, want %q", got, want)
	}
}
