package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"mapdraw/internal/settings"
)

type settingsFileMsg struct{ path string }

type settingsWatchErrMsg struct{ err error }

// waitForSettingsFile blocks until the watcher reports a change. A closed
// watcher ends the loop.
func waitForSettingsFile(w *settings.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case p, ok := <-w.Events:
			if !ok {
				return nil
			}
			return settingsFileMsg{path: p}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return settingsWatchErrMsg{err: err}
		}
	}
}
