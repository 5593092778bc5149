package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) {
	c, z, g, col, cam, a, s := *C, Zipper, Gizmo, Colors, Camera, Audio, ZipperSound
	t.Cleanup(func() {
		*C, Zipper, Gizmo, Colors, Camera, Audio, ZipperSound = c, z, g, col, cam, a, s
	})
}

func TestApplyOverridesOnlyGivenKeys(t *testing.T) {
	snapshot(t)
	width := C.Width
	count := Zipper.DefaultCount

	err := Apply([]byte(`
[window]
height = 720

[zipper]
TapeOffset = 6.5
AutoPlayEase = "linear"

[colors.Tooth]
R = 10
G = 20
B = 30
A = 255
`))
	require.NoError(t, err)

	assert.Equal(t, 720, C.Height)
	assert.Equal(t, width, C.Width)
	assert.Equal(t, 6.5, Zipper.TapeOffset)
	assert.Equal(t, "linear", Zipper.AutoPlayEase)
	assert.Equal(t, count, Zipper.DefaultCount)
	assert.Equal(t, uint8(20), Colors.Tooth.G)
}

func TestApplyInvalidLeavesConfig(t *testing.T) {
	snapshot(t)
	before := Zipper

	err := Apply([]byte("[zipper\nTapeOffset = "))
	assert.Error(t, err)
	assert.Equal(t, before, Zipper)
}

func TestLoadFile(t *testing.T) {
	snapshot(t)
	path := filepath.Join(t.TempDir(), "zipper.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sound]\nMaxVolume = 0.5\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 0.5, ZipperSound.MaxVolume)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.toml")))
}
