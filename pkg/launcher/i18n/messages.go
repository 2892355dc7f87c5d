// Package i18n provides the launcher's user-visible strings. English
// is compiled in; translations load from TOML message files next to
// the settings file when present.
package i18n

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/VisualLeap/GameLauncher/internal"
)

// Messages resolves string IDs against the user's locale with English
// fallback.
type Messages struct {
	localizer *goi18n.Localizer
}

// Load builds the message catalog. dir may hold files named like
// active.de.toml; a missing or empty dir means English only. The
// preferred locale comes from the LANG environment variable.
func Load(dir string) *Messages {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
				continue
			}
			if _, err := bundle.LoadMessageFile(filepath.Join(dir, e.Name())); err != nil {
				internal.GetLogger().Warn("message file skipped", "file", e.Name(), "error", err)
			}
		}
	}

	return &Messages{
		localizer: goi18n.NewLocalizer(bundle, os.Getenv("LANG"), language.English.String()),
	}
}

// EmptyGrid is shown centered in the grid when a tab has no shortcuts.
func (m *Messages) EmptyGrid() string {
	return m.localize(&goi18n.Message{
		ID:    "EmptyGrid",
		Other: "No shortcuts found. Drop shortcut files into the launcher folder.",
	}, nil)
}

// LaunchFailed reports a target that could not be started.
func (m *Messages) LaunchFailed(name string) string {
	return m.localize(&goi18n.Message{
		ID:    "LaunchFailed",
		Other: "Could not launch {{.Name}}.",
	}, map[string]interface{}{"Name": name})
}

func (m *Messages) localize(msg *goi18n.Message, data map[string]interface{}) string {
	s, err := m.localizer.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return s
}
