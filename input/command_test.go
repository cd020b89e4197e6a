package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownCommands(t *testing.T) {
	for _, name := range []string{
		"view", "toggleview", "tag", "toggletag",
		"focusstack", "focusmon", "tagmon", "zoom",
		"incnmaster", "setmfact", "togglefloating", "togglebar",
		"killclient", "setlayout", "movemouse", "resizemouse",
		"spawn", "quit",
	} {
		cmd, ok := Lookup(name)
		assert.True(t, ok, "expected command %q to be registered", name)
		assert.NotNil(t, cmd)
	}
}

func TestLookupUnknownCommand(t *testing.T) {
	_, ok := Lookup("nonexistent")
	assert.False(t, ok)
}
