package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goxwm/goxwm/store"
)

func TestTiledClientsFiltersFloatingAndInvisible(t *testing.T) {
	m := &store.Monitor{TagSet: [2]uint32{1, 0}}
	visible := &store.Client{Mon: m, Tags: 1}
	floating := &store.Client{Mon: m, Tags: 1, Floating: true}
	otherTag := &store.Client{Mon: m, Tags: 2}
	m.Clients = []*store.Client{visible, floating, otherTag}

	got := tiledClients(m)

	assert.Equal(t, []*store.Client{visible}, got)
}

func TestTiledClientsEmptyWhenNoneVisible(t *testing.T) {
	m := &store.Monitor{TagSet: [2]uint32{1, 0}}
	m.Clients = []*store.Client{{Mon: m, Tags: 2, Floating: false}}

	assert.Empty(t, tiledClients(m))
}
