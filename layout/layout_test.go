package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goxwm/goxwm/store"
)

func TestNextTiled(t *testing.T) {
	m := &store.Monitor{TagSet: [2]uint32{1, 0}}
	a := &store.Client{Mon: m, Tags: 1}
	b := &store.Client{Mon: m, Tags: 1, Floating: true}
	c := &store.Client{Mon: m, Tags: 1}
	d := &store.Client{Mon: m, Tags: 2} // different tag, not visible
	list := []*store.Client{a, b, c, d}

	assert.Equal(t, a, nextTiled(list, nil))
	assert.Equal(t, c, nextTiled(list, a))
	assert.Nil(t, nextTiled(list, c))
}

func TestNextTiledSkipsUnknownAfter(t *testing.T) {
	m := &store.Monitor{TagSet: [2]uint32{1, 0}}
	a := &store.Client{Mon: m, Tags: 1}
	list := []*store.Client{a}
	other := &store.Client{Mon: m, Tags: 1}

	assert.Equal(t, a, nextTiled(list, other))
}
