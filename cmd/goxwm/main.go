// Command goxwm is a dynamic tiling window manager for X11.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/goxwm/goxwm/common"
	"github.com/goxwm/goxwm/desktop"
	"github.com/goxwm/goxwm/input"
	"github.com/goxwm/goxwm/layout"
	"github.com/goxwm/goxwm/store"

	log "github.com/sirupsen/logrus"
)

func main() {
	args := os.Args[1:]
	switch {
	case len(args) == 0:
		run()
	case len(args) == 1 && args[0] == "-v":
		common.PrintVersion()
	default:
		desktop.Die("usage: %s [-v]", common.Build.Name)
	}
}

// run wires up the manager lifecycle in the order dwm.c's main() does:
// connect, refuse to start under another WM, configure, scan pre-existing
// clients, then hand off to the event loop until quit fires.
func run() {
	common.InitLogging()
	reapChildren()

	if err := store.Connect(); err != nil {
		desktop.Die("goxwm: %v", err)
	}
	if err := store.CheckOtherWM(); err != nil {
		desktop.Die("goxwm: %v", err)
	}

	if err := common.LoadOverlay(); err != nil {
		log.Warn("Error loading config overlay: ", err)
	}
	common.Config.Keys = defaultKeys()
	common.Config.Buttons = defaultButtons()

	layout.Register()

	if err := desktop.Setup(); err != nil {
		desktop.Die("goxwm: %v", err)
	}
	input.Init()

	if err := desktop.Scan(); err != nil {
		log.Warn("Error scanning pre-existing windows: ", err)
	}

	stopWatch, err := common.WatchConfig()
	if err != nil {
		log.Warn("Error starting config watcher: ", err)
		stopWatch = func() {}
	}

	log.Info(fmt.Sprintf("%s running", common.Build.Summary))
	if err := desktop.Run(); err != nil {
		log.Error("Event loop exited: ", err)
	}

	stopWatch()
	desktop.Cleanup()
}

// reapChildren installs a SIGCHLD handler that reaps spawned processes
// (dmenu, terminals, ...) without blocking, matching dwm.c's
// sigchld()/waitpid(WNOHANG) loop. Grounded on x/sys/unix's raw syscall
// wrappers, the same package the gio X11 backend in the pack reaches
// for instead of the wrapping syscall package.
func reapChildren() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGCHLD)
	go func() {
		for range sigs {
			for {
				pid, err := unix.Wait4(-1, nil, unix.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
			}
		}
	}()
}
