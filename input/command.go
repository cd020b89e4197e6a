// Package input binds configured keyboard and pointer gestures to the
// named commands that actually move clients and tags around. It
// wires itself into desktop's event dispatcher through
// the desktop.HandleKeyPress/HandleButtonPress/RegrabKeys hook
// variables, keeping desktop free of a dependency on the command
// table itself.
package input

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/jezek/xgb/xproto"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/desktop"
	"github.com/goxwm/goxwm/layout"
	"github.com/goxwm/goxwm/store"

	log "github.com/sirupsen/logrus"
)

// Command is a named action bound to a key or button combination,
// parameterized by the binding's Arg. Mirrors dwm.c's Arg-taking
// function-pointer commands.
type Command func(common.Arg)

// commands is the name -> Command table KeyBinding.Command and
// ButtonBinding.Command are resolved against each time a bound key or
// button fires.
var commands = map[string]Command{
	"view":            cmdView,
	"toggleview":      cmdToggleView,
	"tag":             cmdTag,
	"toggletag":       cmdToggleTag,
	"focusstack":      cmdFocusStack,
	"focusmon":        cmdFocusMon,
	"tagmon":          cmdTagMon,
	"zoom":            cmdZoom,
	"incnmaster":      cmdIncNMaster,
	"setmfact":        cmdSetMFact,
	"togglefloating":  cmdToggleFloating,
	"togglebar":       cmdToggleBar,
	"killclient":      cmdKillClient,
	"setlayout":       cmdSetLayout,
	"spawn":           cmdSpawn,
	"quit":            cmdQuit,
	"movemouse":       cmdMoveMouse,
	"resizemouse":     cmdResizeMouse,
}

// Lookup resolves a bound command name, reporting ok=false for a typo'd
// or removed name in a hot-reloaded config.
func Lookup(name string) (Command, bool) {
	c, ok := commands[name]
	return c, ok
}

func cmdView(arg common.Arg) {
	m := store.SelMon
	tags := uint32(arg.Uint) & common.Config.TagMask()
	if tags == m.CurTags() {
		return
	}
	m.SelTags ^= 1
	if tags != 0 {
		m.TagSet[m.SelTags] = tags
	}
	store.Focus(nil)
	layout.Arrange(m)
}

func cmdToggleView(arg common.Arg) {
	m := store.SelMon
	newTags := m.CurTags() ^ (uint32(arg.Uint) & common.Config.TagMask())
	if newTags == 0 {
		return
	}
	m.TagSet[m.SelTags] = newTags
	store.Focus(nil)
	layout.Arrange(m)
}

func cmdTag(arg common.Arg) {
	m := store.SelMon
	tags := uint32(arg.Uint) & common.Config.TagMask()
	if m.Sel == nil || tags == 0 {
		return
	}
	m.Sel.Tags = tags
	store.Focus(nil)
	layout.Arrange(m)
}

func cmdToggleTag(arg common.Arg) {
	m := store.SelMon
	if m.Sel == nil {
		return
	}
	newTags := m.Sel.Tags ^ (uint32(arg.Uint) & common.Config.TagMask())
	if newTags == 0 {
		return
	}
	m.Sel.Tags = newTags
	store.Focus(nil)
	layout.Arrange(m)
}

func cmdFocusStack(arg common.Arg) { desktop.FocusStack(arg.Int) }
func cmdFocusMon(arg common.Arg)   { desktop.FocusMon(arg.Int) }

// cmdTagMon moves the selected client to the next/previous monitor,
// matching dwm.c's tagmon()/sendmon().
func cmdTagMon(arg common.Arg) {
	m := store.SelMon
	if m.Sel == nil || len(store.Mons) < 2 {
		return
	}
	idx := 0
	for i, mon := range store.Mons {
		if mon == m {
			idx = i
			break
		}
	}
	n := len(store.Mons)
	var target *store.Monitor
	if arg.Int > 0 {
		target = store.Mons[(idx+1)%n]
	} else {
		target = store.Mons[(idx-1+n)%n]
	}
	sendMon(m.Sel, target)
}

func sendMon(c *store.Client, m *store.Monitor) {
	if c.Mon == m {
		return
	}
	store.Unfocus(c, true)
	store.Detach(c)
	store.DetachStack(c)
	c.Mon = m
	c.Tags = m.CurTags()
	store.Attach(c)
	store.AttachStack(c)
	store.Focus(nil)
	layout.Arrange(nil)
}

func cmdZoom(common.Arg) { layout.Zoom() }

func cmdIncNMaster(arg common.Arg) {
	m := store.SelMon
	m.NMaster = max(m.NMaster+arg.Int, 0)
	layout.Arrange(m)
}

func cmdSetMFact(arg common.Arg) {
	m := store.SelMon
	if m.CurLayout().Arrange == nil {
		return
	}
	f := arg.Float
	if f < 1.0 {
		f += m.MFact
	} else {
		f -= 1.0
	}
	if f < 0.05 || f > 0.95 {
		return
	}
	m.MFact = f
	layout.Arrange(m)
}

func cmdToggleFloating(common.Arg) {
	m := store.SelMon
	c := m.Sel
	if c == nil || c.Fullscreen {
		return
	}
	c.Floating = !c.Floating || c.Fixed
	if c.Floating {
		store.Resize(c, c.X, c.Y, c.W, c.H, false)
	}
	layout.Arrange(m)
}

func cmdToggleBar(common.Arg) {
	m := store.SelMon
	m.ShowBar = !m.ShowBar
	store.UpdateBarPosition(m)
	layout.Arrange(m)
	desktop.DrawBar(m)
}

// cmdKillClient asks the selected client to close itself via
// WM_DELETE_WINDOW, falling back to a forced XKillClient under a
// grabbed server, matching dwm.c's killclient(). The connection-wide
// handler installed by store.InstallErrorHandler already ignores the
// BadWindow a client that died mid-race would raise (dwm.c installs a
// dummy handler just for this one call; here the permanent handler
// already does the job), so the grab/sync/ungrab bracket only needs to
// serialize the kill against other in-flight requests.
func cmdKillClient(common.Arg) {
	m := store.SelMon
	c := m.Sel
	if c == nil {
		return
	}
	if !store.SendEvent(c, "WM_DELETE_WINDOW") {
		xproto.GrabServer(store.X.Conn())
		xproto.KillClient(store.X.Conn(), uint32(c.Win))
		store.X.Conn().Sync()
		xproto.UngrabServer(store.X.Conn())
	}
}

// cmdSetLayout switches the active layout slot by symbol (arg.Ptr
// carries the configured LayoutConfig.Symbol), matching dwm.c's
// setlayout(). An empty symbol toggles back to the previous slot, as
// dwm.c does when arg->v is NULL; a symbol that is already active or
// not among the configured layouts leaves the layout unchanged.
func cmdSetLayout(arg common.Arg) {
	m := store.SelMon
	symbol, _ := arg.Ptr.(string)

	if symbol == "" {
		m.SelLt ^= 1
	} else if m.Layouts[m.SelLt] == nil || m.Layouts[m.SelLt].Symbol != symbol {
		for _, lc := range common.Config.Snapshot().Layouts {
			if lc.Symbol != symbol {
				continue
			}
			m.SelLt ^= 1
			m.Layouts[m.SelLt] = layoutBySymbol(symbol)
			break
		}
	}

	if m.Layouts[m.SelLt] != nil {
		m.LtSymbol = m.Layouts[m.SelLt].Symbol
	}
	if m.Sel != nil {
		layout.Arrange(m)
	} else {
		desktop.DrawBar(m)
	}
}

func layoutBySymbol(symbol string) *store.Layout {
	byName := map[string]func(*store.Monitor){"tile": layout.Tile, "monocle": layout.Monocle, "floating": nil}
	for _, lc := range common.Config.Snapshot().Layouts {
		if lc.Symbol == symbol {
			return &store.Layout{Symbol: lc.Symbol, Arrange: byName[lc.Name]}
		}
	}
	return nil
}

// cmdSpawn execs arg.Ptr.([]string) detached from the WM's process
// group, matching dwm.c's spawn() fork/setsid/execvp chain.
func cmdSpawn(arg common.Arg) {
	argv, ok := arg.Ptr.([]string)
	if !ok || len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		log.Warn("Error spawning ", argv[0], ": ", err)
	}
}

func cmdQuit(common.Arg) { desktop.Quit() }
