package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lay := m.layout()
		m.l.SetSize(lay.width, lay.contentHeight)
		m.tbl.SetHeight(clamp(lay.canvasH-2, 3, 20))
		m.redrawCanvas()
	case tea.KeyMsg:
		switch m.screen {
		case screenHome:
			m, cmd = m.updateHome(msg)
		case screenEditor:
			m, cmd = m.updateEditorKey(msg)
		case screenSettings:
			m, cmd = m.updateSettings(msg)
		}
	case tea.MouseMsg:
		if m.screen == screenEditor && m.session != nil {
			m = m.updateEditorMouse(msg)
		}
	case settingsFileMsg:
		m.log.WithField("path", msg.path).Info("settings file changed, reloading")
		m.cfg.Load()
		cmd = waitForSettingsFile(m.w)
	case settingsWatchErrMsg:
		m.log.WithError(msg.err).Warn("settings watcher error")
		cmd = waitForSettingsFile(m.w)
	default:
		if m.screen == screenHome {
			m.l, cmd = m.l.Update(msg)
		}
	}
	m.syncInbox()
	return m, cmd
}
