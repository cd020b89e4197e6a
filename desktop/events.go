package desktop

import (
	"reflect"

	"github.com/jezek/xgb"

	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"

	"github.com/goxwm/goxwm/store"
)

// eventHandlerFunc processes one raw X event. Handlers type-assert
// back to the concrete event struct they were registered for.
type eventHandlerFunc func(xgb.Event)

// dispatch is the O(1) event-kind lookup table, built once at package
// init and keyed by concrete event type — the Go equivalent of dwm.c's
// handler[LASTEvent] array of function pointers, since xgb's Event
// interface carries no numeric opcode of its own.
var dispatch map[reflect.Type]eventHandlerFunc

func init() {
	dispatch = map[reflect.Type]eventHandlerFunc{
		reflect.TypeOf(xproto.ButtonPressEvent{}):      wrap(handleButtonPress),
		reflect.TypeOf(xproto.ClientMessageEvent{}):    wrap(handleClientMessage),
		reflect.TypeOf(xproto.ConfigureRequestEvent{}): wrap(handleConfigureRequest),
		reflect.TypeOf(xproto.ConfigureNotifyEvent{}):  wrap(handleConfigureNotify),
		reflect.TypeOf(xproto.DestroyNotifyEvent{}):    wrap(handleDestroyNotify),
		reflect.TypeOf(xproto.EnterNotifyEvent{}):      wrap(handleEnterNotify),
		reflect.TypeOf(xproto.ExposeEvent{}):           wrap(handleExpose),
		reflect.TypeOf(xproto.FocusInEvent{}):          wrap(handleFocusIn),
		reflect.TypeOf(xproto.KeyPressEvent{}):         wrap(handleKeyPress),
		reflect.TypeOf(xproto.MappingNotifyEvent{}):    wrap(handleMappingNotify),
		reflect.TypeOf(xproto.MapRequestEvent{}):       wrap(handleMapRequest),
		reflect.TypeOf(xproto.MotionNotifyEvent{}):     wrap(handleMotionNotify),
		reflect.TypeOf(xproto.PropertyNotifyEvent{}):   wrap(handlePropertyNotify),
		reflect.TypeOf(xproto.UnmapNotifyEvent{}):      wrap(handleUnmapNotify),
	}
}

func wrap[T xgb.Event](fn func(T)) eventHandlerFunc {
	return func(ev xgb.Event) { fn(ev.(T)) }
}

// Running gates the event loop; Quit sets it false so Run returns
// once the next event has been read and handled.
var Running = true

// Run is the single-threaded cooperative event loop and the sole
// reader of the X connection for the process lifetime (§5's no-locks
// requirement — every handler below runs to completion before the
// next event is read).
func Run() error {
	for Running {
		ev, xerr := store.X.Conn().WaitForEvent()
		if xerr != nil {
			log.Warn("X connection error: ", xerr)
			continue
		}
		if ev == nil {
			return nil
		}
		if h, ok := dispatch[reflect.TypeOf(ev)]; ok {
			h(ev)
		}
	}
	return nil
}

// Quit stops the event loop after the current WaitForEvent returns.
func Quit() {
	Running = false
}

// Dispatch runs ev through the normal handler table, reporting whether
// a handler was registered for its type. It lets a modal grab loop
// (input's move/resize drag) feed events it doesn't itself care about
// back through the same dispatch dwm.c's movemouse()/resizemouse()
// fall through to for ConfigureRequest/Expose/MapRequest instead of
// dropping them.
func Dispatch(ev xgb.Event) bool {
	h, ok := dispatch[reflect.TypeOf(ev)]
	if !ok {
		return false
	}
	h(ev)
	return true
}
