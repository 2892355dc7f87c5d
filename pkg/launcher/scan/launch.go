package scan

import (
	"fmt"
	"os/exec"

	"github.com/VisualLeap/GameLauncher/internal"
)

// Launch starts the shortcut's target detached from the launcher
// process. The child's exit status is not tracked; the launcher is a
// springboard, not a supervisor.
func Launch(s *Shortcut) error {
	cmd := exec.Command(s.Target, s.Args...)
	cmd.Dir = s.WorkDir

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", s.Name, err)
	}
	internal.GetLogger().Info("launched", "name", s.Name, "target", s.Target, "pid", cmd.Process.Pid)

	if err := cmd.Process.Release(); err != nil {
		internal.GetLogger().Warn("process release failed", "name", s.Name, "error", err)
	}
	return nil
}
