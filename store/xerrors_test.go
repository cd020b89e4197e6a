package store

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestErrorNameKnownTypes(t *testing.T) {
	assert.Equal(t, "BadWindow", errorName(xproto.WindowError{}))
	assert.Equal(t, "BadMatch", errorName(xproto.MatchError{}))
	assert.Equal(t, "BadAtom", errorName(xproto.AtomError{}))
}

// fakeXError stands in for an xgb.Error variant errorName doesn't
// recognize (e.g. one added by a newer X extension).
type fakeXError struct{}

func (fakeXError) BadId() uint32     { return 0 }
func (fakeXError) SequenceId() uint16 { return 0 }
func (fakeXError) Error() string     { return "fake" }

func TestErrorNameUnknownType(t *testing.T) {
	assert.Equal(t, "Unknown", errorName(fakeXError{}))
}

func TestIgnorableErrorsCoversRaceProneTypes(t *testing.T) {
	for _, name := range []string{"BadWindow", "BadMatch", "BadDrawable", "BadAccess"} {
		assert.True(t, ignorableErrors[name], "expected %s to be ignorable", name)
	}
	assert.False(t, ignorableErrors["BadAtom"])
	assert.False(t, ignorableErrors["BadValue"])
}
