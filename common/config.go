package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"

	log "github.com/sirupsen/logrus"
)

// ArgKind tags the closed sum type bound to commands (§4.J, §9).
type ArgKind uint8

const (
	ArgNone ArgKind = iota
	ArgInt
	ArgUint
	ArgFloat
	ArgPtr
)

// Arg is the parameterized-command payload. Exactly one field is
// meaningful, selected by Kind.
type Arg struct {
	Kind  ArgKind
	Int   int
	Uint  uint
	Float float64
	Ptr   interface{}
}

func IntArg(i int) Arg       { return Arg{Kind: ArgInt, Int: i} }
func UintArg(u uint) Arg     { return Arg{Kind: ArgUint, Uint: u} }
func FloatArg(f float64) Arg { return Arg{Kind: ArgFloat, Float: f} }
func PtrArg(v interface{}) Arg { return Arg{Kind: ArgPtr, Ptr: v} }

// Click identifies the region of the bar (or client/root) a ButtonPress
// landed in, per §4.F's classification step.
type Click uint8

const (
	ClickTagBar Click = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
)

// KeyBinding maps a cleaned modifier mask + keysym to a named command.
type KeyBinding struct {
	Mod     uint16
	Keysym  uint32
	Command string
	Arg     Arg
}

// ButtonBinding maps a click region + cleaned modifier mask + button to a
// named command.
type ButtonBinding struct {
	Click   Click
	Mod     uint16
	Button  uint8
	Command string
	Arg     Arg
}

// Rule matches newly managed clients against class/instance/title
// substrings (§6).
type Rule struct {
	Class    string
	Instance string
	Title    string
	Tags     uint32
	Floating bool
	Monitor  int
}

// LayoutConfig names one of the arrange functions registered by the
// layout package; Symbol is the short bar indicator (e.g. "[]=").
type LayoutConfig struct {
	Symbol string
	Name   string // "tile", "monocle", "floating"
}

// ColorScheme is consumed by the abstract Drawer (§4.I); the core never
// rasterizes directly.
type ColorScheme struct {
	NormBorder string
	NormBg     string
	NormFg     string
	SelBorder  string
	SelBg      string
	SelFg      string
}

type configuration struct {
	mu sync.RWMutex

	Tags           []string
	BorderWidth    int
	SnapDistance   int
	ShowBar        bool
	TopBar         bool
	MFact          float64
	NMaster        int
	ResizeHints    bool
	LockFullscreen bool
	StatusFallback string
	Fonts          []string
	Colors         ColorScheme
	Rules          []Rule
	Layouts        []LayoutConfig
	Keys           []KeyBinding
	Buttons        []ButtonBinding

	reloadFuncs []func()
}

// Config is the process-wide configuration instance. It starts out
// holding the compile-time defaults (DefaultConfig) and may be
// overlaid, at startup and on hot-reload, by an on-disk TOML file
// (§6: "compile-time or load-time data with an enumerated shape").
var Config = DefaultConfig()

// NTags reports the number of configured tags; callers must keep this
// <= 31 per invariant 7.
func (c *configuration) NTags() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Tags)
}

func (c *configuration) TagMask() uint32 {
	n := c.NTags()
	if n <= 0 {
		return 0
	}
	return uint32(1)<<uint(n) - 1
}

func (c *configuration) Snapshot() configuration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return *c
}

// OnReload registers a callback invoked after the config file is
// re-read by the fsnotify watcher. The re-read overlays the same
// fields LoadOverlay does; key/button bindings are not part of the
// file, and layouts are not re-registered.
func (c *configuration) OnReload(fn func()) {
	c.mu.Lock()
	c.reloadFuncs = append(c.reloadFuncs, fn)
	c.mu.Unlock()
}

// DefaultConfig returns the compile-time configuration, the
// config-as-code fallback described in §9's design note, with 9 tags
// (1..9) as dwm.c ships by default, a single tiled+monocle+floating
// layout rotation, and no key/button bindings (the caller's cmd/
// package supplies those; see cmd/goxwm/bindings.go).
func DefaultConfig() *configuration {
	return &configuration{
		Tags:           []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		BorderWidth:    1,
		SnapDistance:   32,
		ShowBar:        true,
		TopBar:         true,
		MFact:          0.55,
		NMaster:        1,
		ResizeHints:    true,
		LockFullscreen: true,
		StatusFallback: Build.Name,
		Fonts:          []string{"monospace:size=10"},
		Colors: ColorScheme{
			NormBorder: "#444444",
			NormBg:     "#222222",
			NormFg:     "#bbbbbb",
			SelBorder:  "#005577",
			SelBg:      "#005577",
			SelFg:      "#eeeeee",
		},
		Layouts: []LayoutConfig{
			{Symbol: "[]=", Name: "tile"},
			{Symbol: "[M]", Name: "monocle"},
			{Symbol: "><>", Name: "floating"},
		},
	}
}

// fileConfig mirrors configuration's persisted fields for TOML
// decoding; bindings and layouts stay compile-time (config-as-code)
// since they reference Go command identifiers, not data.
type fileConfig struct {
	Tags           []string
	BorderWidth    int
	SnapDistance   int
	ShowBar        *bool
	TopBar         *bool
	MFact          float64
	NMaster        int
	ResizeHints    *bool
	LockFullscreen *bool
	StatusFallback string
	Fonts          []string
	Colors         ColorScheme
	Rules          []Rule
}

// ConfigPath resolves ~/.config/goxwm/config.toml (or
// $XDG_CONFIG_HOME/goxwm/config.toml), matching the path-resolution
// idiom of mark-cooke-cortile's config loader.
func ConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, Build.Name, "config.toml"), nil
	}
	home, err := homedir.Expand(fmt.Sprintf("~/.config/%s", Build.Name))
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.toml"), nil
}

// LoadOverlay reads an optional TOML config file and overlays
// non-zero fields onto Config. A missing file is not an error: the
// compile-time defaults stand alone.
func LoadOverlay() error {
	path, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	return loadOverlayFrom(path)
}

func loadOverlayFrom(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("No config overlay found [", path, "]")
		return nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	Config.mu.Lock()
	if len(fc.Tags) > 0 {
		Config.Tags = fc.Tags
	}
	if fc.BorderWidth > 0 {
		Config.BorderWidth = fc.BorderWidth
	}
	if fc.SnapDistance > 0 {
		Config.SnapDistance = fc.SnapDistance
	}
	if fc.ShowBar != nil {
		Config.ShowBar = *fc.ShowBar
	}
	if fc.TopBar != nil {
		Config.TopBar = *fc.TopBar
	}
	if fc.MFact > 0 {
		Config.MFact = fc.MFact
	}
	if fc.NMaster > 0 {
		Config.NMaster = fc.NMaster
	}
	if fc.ResizeHints != nil {
		Config.ResizeHints = *fc.ResizeHints
	}
	if fc.LockFullscreen != nil {
		Config.LockFullscreen = *fc.LockFullscreen
	}
	if fc.StatusFallback != "" {
		Config.StatusFallback = fc.StatusFallback
	}
	if len(fc.Fonts) > 0 {
		Config.Fonts = fc.Fonts
	}
	if fc.Colors != (ColorScheme{}) {
		Config.Colors = fc.Colors
	}
	if fc.Rules != nil {
		Config.Rules = fc.Rules
	}
	reloadFuncs := append([]func(){}, Config.reloadFuncs...)
	Config.mu.Unlock()

	log.WithField("path", path).Info("Config overlay applied")
	for _, fn := range reloadFuncs {
		fn()
	}
	return nil
}

// WatchConfig watches the config file for changes and re-applies the
// overlay on write, grounded on cogentcore-core's fsnotify-driven
// live-reload pattern. It returns a stop function; callers run it at
// shutdown.
func WatchConfig() (stop func(), err error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := loadOverlayFrom(path); err != nil {
					log.Warn("Error reloading config: ", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Config watcher error: ", err)
			case <-done:
				watcher.Close()
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
