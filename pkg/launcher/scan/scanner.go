package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/VisualLeap/GameLauncher/pkg/launcher/icon"
	"github.com/VisualLeap/GameLauncher/internal"
)

// RootTabName is the tab holding shortcuts that sit directly in the
// shortcut root rather than in a subfolder.
const RootTabName = "All"

// Tab is a named group of shortcuts with their icons resolved.
type Tab struct {
	Name      string
	Shortcuts []*Shortcut
	Icons     []*icon.Bitmap // parallel to Shortcuts
}

// Scanner walks the shortcut root and builds the tab list. Icons are
// loaded through a shared cache and resampled to the configured grid
// size once, at scan time, so paints never touch the disk.
type Scanner struct {
	root     string
	cache    *icon.Cache
	iconSize int
	log      *slog.Logger
}

// NewScanner returns a scanner over root, resolving icons at the given
// edge length.
func NewScanner(root string, cache *icon.Cache, iconSize int) *Scanner {
	return &Scanner{
		root:     root,
		cache:    cache,
		iconSize: iconSize,
		log:      internal.GetLogger(),
	}
}

// SetIconSize changes the resample target for subsequent scans, after
// the user adjusts the icon scale. The cache is cleared because its
// entries are baked at the old size.
func (s *Scanner) SetIconSize(size int) {
	if size == s.iconSize {
		return
	}
	s.iconSize = size
	s.cache.Clear()
}

// Scan reads the shortcut root and returns its tabs: the root tab
// first, then one tab per subfolder in lexical order. Filesystem
// problems are logged and produce empty results, never a failed
// launcher. A missing root is simply an empty root tab.
func (s *Scanner) Scan() []Tab {
	tabs := []Tab{s.scanDir(s.root, RootTabName)}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("shortcut root unreadable", "root", s.root, "error", err)
		}
		return tabs
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)

	for _, name := range folders {
		tabs = append(tabs, s.scanDir(filepath.Join(s.root, name), name))
	}
	return tabs
}

func (s *Scanner) scanDir(dir, tabName string) Tab {
	tab := Tab{Name: tabName}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("tab folder unreadable", "dir", dir, "error", err)
		}
		return tab
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), FileExt) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sc, err := readShortcut(filepath.Join(dir, name))
		if err != nil {
			s.log.Warn("shortcut skipped", "error", err)
			continue
		}
		tab.Shortcuts = append(tab.Shortcuts, sc)
		tab.Icons = append(tab.Icons, s.resolveIcon(sc))
	}
	return tab
}

// resolveIcon loads, converts and resamples the shortcut's icon,
// consulting the cache first. Failures degrade to an invalid bitmap
// that the compositor paints as a placeholder block.
func (s *Scanner) resolveIcon(sc *Shortcut) *icon.Bitmap {
	path := sc.IconPath
	if path == "" {
		return &icon.Bitmap{}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(sc.Path), path)
	}

	key := icon.Key(path, sc.IconIndex)
	if b := s.cache.Get(key); b != nil {
		return b
	}

	b, err := icon.LoadFile(path, icon.SourceCustomFile)
	if err != nil {
		s.log.Debug("icon unavailable", "shortcut", sc.Name, "path", path, "error", err)
		return &icon.Bitmap{}
	}
	b = icon.Resample(b, s.iconSize, s.iconSize)
	s.cache.Set(key, b)
	return b
}
