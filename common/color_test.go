package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexColor(t *testing.T) {
	v, err := ParseHexColor("#005577")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x005577), v)

	v, err = ParseHexColor("bbbbbb")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xbbbbbb), v)
}

func TestParseHexColorInvalid(t *testing.T) {
	_, err := ParseHexColor("#bad")
	assert.Error(t, err)

	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)
}
