package store

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"
)

// ignorableErrors lists the BadXXX error values dwm.c's xerror()
// swallows outright because they are expected races against a window
// that is already being destroyed (§5's "filtered error handler"
// requirement). Keyed by the concrete xgb error type name.
var ignorableErrors = map[string]bool{
	"BadWindow":   true,
	"BadMatch":    true,
	"BadDrawable": true,
	"BadAccess":   true,
	"BadValue":    true,
}

// InstallErrorHandler registers the connection-wide error sink. Go's
// xgb surfaces asynchronous errors through this callback instead of
// dwm.c's installed X11 error function; there is no install-time probe
// error to return, so CheckOtherWM instead relies on the Check()
// cookie from its substructure-redirect request.
func InstallErrorHandler() {
	X.Conn().ErrorHandler = handleXError
}

func handleXError(err xgb.Error) {
	name := errorName(err)
	if ignorableErrors[name] {
		log.WithFields(log.Fields{
			"type":     name,
			"sequence": err.SequenceId(),
			"badId":    err.BadId(),
		}).Debug("Ignoring expected X request error")
		return
	}
	log.WithFields(log.Fields{
		"type":     name,
		"sequence": err.SequenceId(),
		"badId":    err.BadId(),
	}).Warn("X protocol error")
}

func errorName(err xgb.Error) string {
	switch err.(type) {
	case xproto.WindowError:
		return "BadWindow"
	case xproto.MatchError:
		return "BadMatch"
	case xproto.DrawableError:
		return "BadDrawable"
	case xproto.AccessError:
		return "BadAccess"
	case xproto.ValueError:
		return "BadValue"
	case xproto.PixmapError:
		return "BadPixmap"
	case xproto.GContextError:
		return "BadGC"
	case xproto.IDChoiceError:
		return "BadIDChoice"
	case xproto.AtomError:
		return "BadAtom"
	default:
		return "Unknown"
	}
}
