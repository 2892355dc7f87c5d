package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/icon"
)

func writeShortcut(t *testing.T, dir, file, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644))
}

func newTestScanner(root string) *Scanner {
	return NewScanner(root, icon.NewCache(), 128)
}

func TestScanRootTabAndFolders(t *testing.T) {
	root := t.TempDir()
	writeShortcut(t, root, "editor.toml", `name = "Editor"`+"\n"+`target = "/usr/bin/editor"`)
	require.NoError(t, os.Mkdir(filepath.Join(root, "Games"), 0o755))
	writeShortcut(t, filepath.Join(root, "Games"), "chess.toml", `target = "/usr/bin/chess"`)

	tabs := newTestScanner(root).Scan()
	require.Len(t, tabs, 2)

	assert.Equal(t, RootTabName, tabs[0].Name)
	require.Len(t, tabs[0].Shortcuts, 1)
	assert.Equal(t, "Editor", tabs[0].Shortcuts[0].Name)

	assert.Equal(t, "Games", tabs[1].Name)
	require.Len(t, tabs[1].Shortcuts, 1)
	assert.Equal(t, "chess", tabs[1].Shortcuts[0].Name, "name falls back to the file name")
}

func TestScanSortsLexically(t *testing.T) {
	root := t.TempDir()
	writeShortcut(t, root, "zebra.toml", `target = "/bin/z"`)
	writeShortcut(t, root, "apple.toml", `target = "/bin/a"`)
	for _, dir := range []string{"Work", "Games"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}

	tabs := newTestScanner(root).Scan()
	require.Len(t, tabs, 3)
	assert.Equal(t, "Games", tabs[1].Name)
	assert.Equal(t, "Work", tabs[2].Name)

	assert.Equal(t, "apple", tabs[0].Shortcuts[0].Name)
	assert.Equal(t, "zebra", tabs[0].Shortcuts[1].Name)
}

func TestScanMissingRootYieldsEmptyTab(t *testing.T) {
	tabs := newTestScanner(filepath.Join(t.TempDir(), "nowhere")).Scan()

	require.Len(t, tabs, 1)
	assert.Equal(t, RootTabName, tabs[0].Name)
	assert.Empty(t, tabs[0].Shortcuts)
}

func TestScanSkipsInvalidFiles(t *testing.T) {
	root := t.TempDir()
	writeShortcut(t, root, "good.toml", `target = "/bin/good"`)
	writeShortcut(t, root, "broken.toml", `target = = "nope"`)
	writeShortcut(t, root, "notarget.toml", `name = "Nameless"`)
	writeShortcut(t, root, "readme.txt", `not a shortcut`)

	tabs := newTestScanner(root).Scan()
	require.Len(t, tabs[0].Shortcuts, 1)
	assert.Equal(t, "good", tabs[0].Shortcuts[0].Name)
}

func TestScanSkipsHiddenFolders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".trash"), 0o755))

	tabs := newTestScanner(root).Scan()
	assert.Len(t, tabs, 1)
}

func TestShortcutDefaults(t *testing.T) {
	root := t.TempDir()
	writeShortcut(t, root, "app.toml", `target = "/opt/app/bin/app"`+"\n"+`args = ["--fast"]`)

	tabs := newTestScanner(root).Scan()
	sc := tabs[0].Shortcuts[0]

	assert.Equal(t, "/opt/app/bin/app", sc.Target)
	assert.Equal(t, []string{"--fast"}, sc.Args)
	assert.Equal(t, "/opt/app/bin", sc.WorkDir, "workdir defaults to the target's folder")
}

func TestMissingIconYieldsInvalidBitmap(t *testing.T) {
	root := t.TempDir()
	writeShortcut(t, root, "app.toml", `target = "/bin/app"`+"\n"+`icon = "/nope/missing.png"`)

	tabs := newTestScanner(root).Scan()
	require.Len(t, tabs[0].Icons, 1)
	assert.False(t, tabs[0].Icons[0].Valid())
}

func TestShortcutRoundTrip(t *testing.T) {
	root := t.TempDir()
	sc := &Shortcut{
		Name:      "Round",
		Target:    "/bin/round",
		Args:      []string{"-v"},
		WorkDir:   "/tmp",
		IconPath:  "/icons/round.png",
		IconIndex: 2,
		Path:      filepath.Join(root, "round.toml"),
	}
	require.NoError(t, sc.Write())

	got, err := readShortcut(sc.Path)
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}
