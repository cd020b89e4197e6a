package input

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestCleanMaskStripsLockModifiers(t *testing.T) {
	mod := uint16(xproto.ModMask4) // Super
	noisy := mod | xproto.ModMaskLock | xproto.ModMask2

	assert.Equal(t, mod, cleanMask(noisy))
}

func TestCleanMaskPreservesShiftAndSuper(t *testing.T) {
	mod := uint16(xproto.ModMask4) | uint16(xproto.ModMaskShift)

	assert.Equal(t, mod, cleanMask(mod))
}

func TestLockModifiersCombinations(t *testing.T) {
	got := lockModifiers()

	assert.Len(t, got, 4)
	assert.Contains(t, got, uint16(0))
	assert.Contains(t, got, uint16(xproto.ModMaskLock|xproto.ModMask2))
}
