package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTagsAndTagMask(t *testing.T) {
	c := &configuration{Tags: []string{"1", "2", "3"}}
	assert.Equal(t, 3, c.NTags())
	assert.Equal(t, uint32(0b111), c.TagMask())
}

func TestTagMaskEmpty(t *testing.T) {
	c := &configuration{}
	assert.Equal(t, uint32(0), c.TagMask())
}

func TestLoadOverlayFromMissingFileIsNotError(t *testing.T) {
	err := loadOverlayFrom(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NoError(t, err)
}

func TestLoadOverlayFromAppliesNonZeroFields(t *testing.T) {
	orig := Config
	Config = DefaultConfig()
	defer func() { Config = orig }()

	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
MFact = 0.6
NMaster = 2
BorderWidth = 3
`
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	assert.NoError(t, loadOverlayFrom(path))

	assert.Equal(t, 0.6, Config.MFact)
	assert.Equal(t, 2, Config.NMaster)
	assert.Equal(t, 3, Config.BorderWidth)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Config.Tags)
}

func TestLoadOverlayFromInvokesReloadCallbacks(t *testing.T) {
	orig := Config
	Config = DefaultConfig()
	defer func() { Config = orig }()

	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("NMaster = 4\n"), 0o644))

	called := false
	Config.OnReload(func() { called = true })
	assert.NoError(t, loadOverlayFrom(path))

	assert.True(t, called)
}
