package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/mrdg/ambient/audio"
	"github.com/mrdg/ambient/config"
	"github.com/mrdg/ambient/preset"
	"github.com/mrdg/ambient/ui"
	"github.com/mrdg/ambient/volume"
)

const logFile = "ambient.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if f := openLog(); f != nil {
		defer f.Close()
	}
	if err := run(cfg); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openLog sends log output to a file in the user cache directory since the
// terminal belongs to the UI. Logging is discarded if the file can't be
// created.
func openLog() *os.File {
	log.SetOutput(io.Discard)
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil
	}
	dir = filepath.Join(dir, config.AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	return f
}

type output interface {
	Start() error
	Close() error
}

func openOutput(name string, m *audio.Mixer) (output, error) {
	switch name {
	case "oto":
		return audio.NewOtoSink(m)
	default:
		return audio.NewSink(m)
	}
}

func run(cfg *config.Config) (err error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	showLoading(screen)

	mixer := audio.NewMixer(cfg.SampleRate)
	master := volume.NewMaster(mixer, volume.WithFadeIn(cfg.FadeIn))
	discoverErr := master.Discover(cfg.SoundDirs, cfg.Extensions, audio.NewTags())
	if discoverErr != nil {
		log.Print(discoverErr)
	}

	out, err := openOutput(cfg.Output, mixer)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.Start(); err != nil {
		return err
	}

	a, err := newApp(screen, cfg, master)
	if err != nil {
		return err
	}
	if discoverErr != nil {
		a.showError(discoverErr)
	}
	if err := master.LoadPreset(a.store); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Print(err)
		a.showError(err)
	}

	for {
		a.render()
		if !a.handleEvent(screen.PollEvent()) {
			return nil
		}
	}
}

type app struct {
	screen tcell.Screen
	master *volume.Master
	store  preset.FileStore
	list   *ui.List
	router *ui.Router
	status ui.Message
}

func newApp(s tcell.Screen, cfg *config.Config, m *volume.Master) (*app, error) {
	km, err := ui.NewKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	a := &app{
		screen: s,
		master: m,
		store:  preset.FileStore{Path: cfg.Preset},
		list:   &ui.List{},
	}

	controls := []volume.Control{m}
	for _, t := range m.Tracks() {
		controls = append(controls, t)
	}
	width := ui.NameWidth(controls...)

	// master, separator, tracks
	entries := make([]ui.Widget, 0, len(controls)+1)
	for i, c := range controls {
		entries = append(entries, &ui.Slider{
			Control:   c,
			NameWidth: width,
			Step:      cfg.Step,
			BigStep:   cfg.BigStep,
			OnError:   a.showError,
		})
		if i == 0 {
			entries = append(entries, nil)
		}
	}
	a.list.SetEntries(entries, 2)
	a.router = &ui.Router{List: a.list, Keymap: km}
	return a, nil
}

// handleEvent returns false when the app should exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		// screen was finalized
		return false
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.status = ui.Message{}
		if a.router.Dispatch(ev) {
			return true
		}
		switch a.router.Keymap.Lookup(ev) {
		case ui.ActionQuit:
			return false
		case ui.ActionSavePreset:
			a.savePreset()
		}
	}
	return true
}

func (a *app) savePreset() {
	if err := a.master.SavePreset(a.store); err != nil {
		log.Print(err)
		a.showError(err)
		return
	}
	a.status = ui.Message{Text: "Preset saved"}
}

func (a *app) showError(err error) {
	a.status = ui.Message{Text: err.Error(), Error: true}
}
