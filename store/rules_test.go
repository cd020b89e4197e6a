package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitorByNum(t *testing.T) {
	m0 := &Monitor{Num: 0}
	m1 := &Monitor{Num: 1}
	old := Mons
	Mons = []*Monitor{m0, m1}
	defer func() { Mons = old }()

	assert.Equal(t, m1, monitorByNum(1))
	assert.Nil(t, monitorByNum(5))
}
