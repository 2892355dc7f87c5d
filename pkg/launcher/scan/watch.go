package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"

	"github.com/VisualLeap/GameLauncher/internal"
)

// debounce collapses the burst of events a file copy or folder sync
// produces into a single rescan.
const debounce = 500 * time.Millisecond

// Watcher flags the shortcut root dirty when anything under it
// changes. The UI loop polls Dirty once per frame instead of blocking
// on a channel, because its heartbeat already comes from the event
// queue.
type Watcher struct {
	fs    *fsnotify.Watcher
	dirty atomic.Bool
	done  chan struct{}
	log   *slog.Logger
}

// Watch starts watching root and its immediate subfolders. The
// returned watcher is valid even if root does not exist yet; it just
// never fires.
func Watch(root string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:   fs,
		done: make(chan struct{}),
		log:  internal.GetLogger(),
	}
	w.addTree(root)
	go w.run()
	return w, nil
}

// addTree registers root and its first-level subfolders. Tabs only go
// one level deep, so neither does the watch.
func (w *Watcher) addTree(root string) {
	if err := w.fs.Add(root); err != nil {
		w.log.Debug("watch unavailable", "root", root, "error", err)
		return
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := w.fs.Add(filepath.Join(root, e.Name())); err != nil {
				w.log.Debug("subfolder watch failed", "dir", e.Name(), "error", err)
			}
		}
	}
}

func (w *Watcher) run() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// A new subfolder is a new tab; watch it too.
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.fs.Add(ev.Name); err != nil {
						w.log.Debug("subfolder watch failed", "dir", ev.Name, "error", err)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				w.dirty.Store(true)
			})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

// Dirty reports and clears the pending-change flag.
func (w *Watcher) Dirty() bool {
	return w.dirty.Swap(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
