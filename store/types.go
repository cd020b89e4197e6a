package store

import (
	"time"

	"github.com/jezek/xgb/xproto"
)

// MaxTags is the compile-time bound on the tag bitmask (invariant 7);
// common.Config.Tags must never exceed it.
const MaxTags = 31

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields a client may
// advertise (§3 Client/Size hints).
type SizeHints struct {
	BaseWidth, BaseHeight   int
	MinWidth, MinHeight     int
	MaxWidth, MaxHeight     int
	IncWidth, IncHeight     int
	MinAspect, MaxAspect    float64
	Valid                   bool // set by UpdateSizeHints; a WM_NORMAL_HINTS PropertyNotify re-reads the hints at once rather than clearing it
}

// Client represents one managed top-level window (§3).
type Client struct {
	Win xproto.Window

	Name string // UTF-8 title, bounded to 256 bytes, falls back to "broken"

	X, Y, W, H   int
	BorderWidth  int
	OldX, OldY   int
	OldW, OldH   int
	OldBorder    int

	Hints SizeHints

	Fixed      bool
	Floating   bool
	Urgent     bool
	NeverFocus bool
	Fullscreen bool
	OldState   bool // floating flag saved across a fullscreen round-trip

	Tags uint32

	Mon *Monitor

	Created time.Time
}

// Layout binds a bar symbol to an arrange function. A nil Arrange
// means floating (§3 Monitor/layout slots, §4.D).
type Layout struct {
	Symbol  string
	Arrange func(*Monitor)
}

// Monitor represents one physical screen region (§3).
type Monitor struct {
	Num int

	MX, MY, MW, MH int // screen rectangle
	WX, WY, WW, WH int // work area (screen minus bar strip)

	ShowBar   bool
	TopBar    bool
	BarWin    xproto.Window
	BarHeight int // 0 when no bar has been drawn yet

	TagSet   [2]uint32 // current/previous
	SelTags  int       // 0 or 1, indexes TagSet

	Layouts [2]*Layout // current/previous
	SelLt   int

	MFact   float64
	NMaster int

	Clients []*Client // tile-order list, new clients attach at head
	Stack   []*Client // focus-history list, MRU head

	Sel *Client

	LtSymbol string // cached for the bar; set by the active arranger
}

// CurTags returns the currently active tagset bitmask.
func (m *Monitor) CurTags() uint32 {
	return m.TagSet[m.SelTags]
}

func (m *Monitor) CurLayout() *Layout {
	return m.Layouts[m.SelLt]
}

// IsVisible reports whether c shares a tag with its monitor's active
// tagset (the ISVISIBLE macro).
func IsVisible(c *Client) bool {
	return c.Tags&c.Mon.CurTags() != 0
}

// Width/Height with border, matching dwm's WIDTH/HEIGHT macros.
func (c *Client) OuterWidth() int  { return c.W + 2*c.BorderWidth }
func (c *Client) OuterHeight() int { return c.H + 2*c.BorderWidth }

