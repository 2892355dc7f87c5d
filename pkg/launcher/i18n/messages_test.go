package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishDefaults(t *testing.T) {
	m := Load(t.TempDir())

	assert.Contains(t, m.EmptyGrid(), "No shortcuts found")
	assert.Equal(t, "Could not launch Chess.", m.LaunchFailed("Chess"))
}

func TestMissingDirFallsBackToEnglish(t *testing.T) {
	m := Load(filepath.Join(t.TempDir(), "nowhere"))

	assert.NotEmpty(t, m.EmptyGrid())
}

func TestTranslationOverride(t *testing.T) {
	dir := t.TempDir()
	body := "[EmptyGrid]\nother = \"Keine Verknüpfungen gefunden.\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.de.toml"), []byte(body), 0o644))

	t.Setenv("LANG", "de")
	m := Load(dir)

	assert.Equal(t, "Keine Verknüpfungen gefunden.", m.EmptyGrid())
}
