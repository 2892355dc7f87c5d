// Package scan discovers shortcut files on disk, groups them into
// tabs, and resolves their icons through the bitmap cache. A shortcut
// is a small TOML file naming a target executable; subfolders of the
// shortcut root become tabs of their own.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileExt is the extension shortcut files carry.
const FileExt = ".toml"

// shortcutFile is the on-disk TOML schema.
type shortcutFile struct {
	Name      string   `toml:"name"`
	Target    string   `toml:"target"`
	Args      []string `toml:"args"`
	WorkDir   string   `toml:"workdir"`
	Icon      string   `toml:"icon"`
	IconIndex int      `toml:"icon_index"`
}

// Shortcut is one launchable entry. IconPath may be empty, in which
// case the grid shows a placeholder block.
type Shortcut struct {
	Name      string
	Target    string
	Args      []string
	WorkDir   string
	IconPath  string
	IconIndex int
	// Path is the shortcut file itself, used as the cache key prefix
	// and in log lines.
	Path string
}

// readShortcut parses one shortcut file. A missing target makes the
// file invalid; a missing display name falls back to the file name.
func readShortcut(path string) (*Shortcut, error) {
	var f shortcutFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Target == "" {
		return nil, fmt.Errorf("%s: no target", path)
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), FileExt)
	}

	workDir := f.WorkDir
	if workDir == "" {
		workDir = filepath.Dir(f.Target)
	}

	return &Shortcut{
		Name:      name,
		Target:    f.Target,
		Args:      f.Args,
		WorkDir:   workDir,
		IconPath:  f.Icon,
		IconIndex: f.IconIndex,
		Path:      path,
	}, nil
}

// Write serializes a shortcut back to its file. Used by tests and by
// tooling that creates shortcuts programmatically.
func (s *Shortcut) Write() error {
	f := shortcutFile{
		Name:      s.Name,
		Target:    s.Target,
		Args:      s.Args,
		WorkDir:   s.WorkDir,
		Icon:      s.IconPath,
		IconIndex: s.IconIndex,
	}
	out, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer out.Close()
	return toml.NewEncoder(out).Encode(f)
}
