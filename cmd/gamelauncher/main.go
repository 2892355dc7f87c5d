package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/VisualLeap/GameLauncher/pkg/launcher"
	"github.com/VisualLeap/GameLauncher/pkg/launcher/config"
	"github.com/VisualLeap/GameLauncher/internal"
)

func main() {
	var (
		shortcuts = flag.String("shortcuts", "", "folder holding shortcut files (default: <config>/GameLauncher/shortcuts)")
		settings  = flag.String("settings", "", "settings file (default: <config>/GameLauncher/launcher.toml)")
		font      = flag.String("font", "", "UI font file, overrides the theme font")
		logPath   = flag.String("log", "", "log file (default: <config>/GameLauncher/launcher.log)")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	base := configBase()
	if *shortcuts == "" {
		*shortcuts = filepath.Join(base, "shortcuts")
	}
	if *settings == "" {
		*settings = filepath.Join(base, config.DefaultFileName)
	}
	if *logPath == "" {
		*logPath = filepath.Join(base, "launcher.log")
	}

	internal.SetLogPath(*logPath)
	internal.SetRawLogLevel(*logLevel)
	defer internal.CloseLogger()
	log := internal.GetLogger()

	app, err := launcher.New(launcher.Options{
		SettingsPath: *settings,
		ShortcutRoot: *shortcuts,
		MessagesDir:  filepath.Join(base, "messages"),
		FontPath:     *font,
	})
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		log.Error("launcher exited", "error", err)
		os.Exit(1)
	}
}

// configBase is the per-user folder everything lives in. Falls back to
// the working directory when the platform has no config dir.
func configBase() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "GameLauncher")
}
