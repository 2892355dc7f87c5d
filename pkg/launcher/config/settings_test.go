package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), s)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 1.0, s.Display.IconScale)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	body := "[display]\nicon_scale = 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, s.Display.IconScale)
	assert.Equal(t, 36, s.Display.IconLabelFontSize, "unset keys stay at defaults")
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	body := "[display]\nicon_scale = 9.0\ntab_height = 5\n\n[window]\nwidth = 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.Display.IconScale)
	assert.Equal(t, 20, s.Display.TabHeight)
	assert.Equal(t, 800, s.Window.Width)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))

	s, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")

	s := Default()
	s.Window.Width = 1024
	s.Window.ActiveTab = 2
	s.Display.IconScale = 0.75
	s.TabColors["Games"] = "1a2b3c"
	require.NoError(t, s.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := Default()
	require.NoError(t, s.Save(filepath.Join(dir, "launcher.toml")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTabColor(t *testing.T) {
	s := Default()
	s.TabColors["Games"] = "1a2b3c"
	s.TabColors["Bad"] = "xyz"
	fallback := color.RGBA{R: 70, G: 70, B: 77, A: 255}

	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}, s.TabColor("Games", fallback))
	assert.Equal(t, fallback, s.TabColor("Bad", fallback))
	assert.Equal(t, fallback, s.TabColor("Unknown", fallback))
}
