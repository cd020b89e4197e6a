package desktop

import "github.com/goxwm/goxwm/common"

// HandleKeyPress and HandleButtonPress are wired up by the input
// package at startup (input.Init), keeping desktop free of an import
// on input: the event dispatcher only needs somewhere to hand off a
// cleaned modifier+keysym/button combination, not the command table
// itself.
var (
	HandleKeyPress    func(mod uint16, keysym uint32)
	HandleButtonPress func(click common.Click, mod uint16, button uint8, tagArg common.Arg)
)
