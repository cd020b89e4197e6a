package store

import (
	"fmt"
	"sort"

	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"

	"github.com/goxwm/goxwm/common"

	log "github.com/sirupsen/logrus"
)

// X is the single display connection (§5: the event loop is its sole
// reader). Grounded on alexzeitgeist-cortile/store/root.go's package
// level X *xgbutil.XUtil.
var X *xgbutil.XUtil

// Head describes one RandR output rectangle, before it is promoted to
// a managed Monitor.
type Head struct {
	Id       uint32
	Name     string
	Primary  bool
	Geometry common.Geometry
}

// Connect opens the display connection and confirms RandR support.
// It makes a single connection attempt; a failure is returned
// without retrying.
func Connect() error {
	conn, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	X = conn

	if err := randr.Init(X.Conn()); err != nil {
		return fmt.Errorf("init randr extension: %w", err)
	}

	log.Info("Connected to X server [", common.Build.Summary, "]")
	return nil
}

// RootWin is a convenience accessor matching the teacher's X.RootWin()
// call sites.
func RootWin() xproto.Window {
	return X.RootWin()
}

// PhysicalHeads queries RandR for connected, enabled outputs, sorted
// left-to-right. Grounded verbatim on
// alexzeitgeist-cortile/store/root.go's PhysicalHeadsGet, adapted to
// return plain Head values instead of cortile's XHead (which carried
// desktop-grid bookkeeping this design doesn't need).
func PhysicalHeads() ([]Head, error) {
	resources, err := randr.GetScreenResources(X.Conn(), RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("get screen resources: %w", err)
	}

	primary, err := randr.GetOutputPrimary(X.Conn(), RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("get primary output: %w", err)
	}
	hasPrimary := false

	heads := []Head{}
	biggest := Head{}
	for _, output := range resources.Outputs {
		oinfo, err := randr.GetOutputInfo(X.Conn(), output, 0).Reply()
		if err != nil {
			log.Warn("Error retrieving output info: ", err)
			continue
		}
		if oinfo.Connection != randr.ConnectionConnected || oinfo.Crtc == 0 {
			continue
		}

		cinfo, err := randr.GetCrtcInfo(X.Conn(), oinfo.Crtc, 0).Reply()
		if err != nil {
			log.Warn("Error retrieving crtc info: ", err)
			continue
		}

		head := Head{
			Id:      uint32(output),
			Name:    string(oinfo.Name),
			Primary: primary != nil && output == primary.Output,
			Geometry: common.Geometry{
				X:      int(cinfo.X),
				Y:      int(cinfo.Y),
				Width:  int(cinfo.Width),
				Height: int(cinfo.Height),
			},
		}
		heads = append(heads, head)

		hasPrimary = head.Primary || hasPrimary
		if head.Geometry.Width*head.Geometry.Height > biggest.Geometry.Width*biggest.Geometry.Height {
			biggest = head
		}
	}

	if !hasPrimary {
		for i, h := range heads {
			if h.Id == biggest.Id {
				heads[i].Primary = true
			}
		}
	}

	sort.Slice(heads, func(i, j int) bool {
		return heads[i].Geometry.X < heads[j].Geometry.X
	})

	if len(heads) == 0 {
		// Fall back to a single head covering the root geometry, the
		// behavior dwm.c falls back to when Xinerama/RandR report
		// nothing usable.
		geom, err := RootGeometry()
		if err != nil {
			return nil, err
		}
		heads = append(heads, Head{Name: "default", Primary: true, Geometry: geom})
	}

	return heads, nil
}

func RootGeometry() (common.Geometry, error) {
	geom, err := xproto.GetGeometry(X.Conn(), xproto.Drawable(RootWin())).Reply()
	if err != nil {
		return common.Geometry{}, fmt.Errorf("get root geometry: %w", err)
	}
	return common.Geometry{X: 0, Y: 0, Width: int(geom.Width), Height: int(geom.Height)}, nil
}

// PointerPosition returns the current pointer root coordinates, used
// by WinToMon's root-window case and by focus-follows-pointer logic.
func PointerPosition() (common.Point, error) {
	p, err := xproto.QueryPointer(X.Conn(), RootWin()).Reply()
	if err != nil {
		return common.Point{}, fmt.Errorf("query pointer: %w", err)
	}
	return common.Point{X: int(p.RootX), Y: int(p.RootY)}, nil
}

// CheckOtherWM implements §4.K's single-WM mutual-exclusion gate: it
// asks for substructure redirect on the root window with a checked
// request, treats any error from it as another WM holding the redirect,
// and otherwise installs the real filtered handler (xerrors.go).
func CheckOtherWM() error {
	otherWM := false
	xproto.ChangeWindowAttributesChecked(X.Conn(), RootWin(), xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureRedirect),
	})
	cookie := xproto.ChangeWindowAttributesChecked(X.Conn(), RootWin(), xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
			xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
			xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange),
	})
	if err := cookie.Check(); err != nil {
		otherWM = true
	}
	if otherWM {
		return fmt.Errorf("another window manager is already running")
	}
	InstallErrorHandler()
	return nil
}

// EwmhName reports the currently running WM's EWMH name, used the
// same way alexzeitgeist-cortile/store/root.go uses it to gate
// feature compatibility checks.
func EwmhName() (string, error) {
	return ewmh.GetEwmhWM(X)
}

func wmClass(w xproto.Window) (class, instance string) {
	cls, err := icccm.WmClassGet(X, w)
	if err != nil || cls == nil {
		return "", ""
	}
	return cls.Class, cls.Instance
}
