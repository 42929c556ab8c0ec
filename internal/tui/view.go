package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	title := " mapdraw ─ maps "
	switch m.screen {
	case screenEditor:
		if m.session != nil {
			title = fmt.Sprintf(" mapdraw ─ %s ", m.session.Map().Name)
		}
	case screenSettings:
		title = " mapdraw ─ settings "
	}
	header := lipgloss.NewStyle().Width(lay.width).Render(m.st.title.Render(title))

	// Body
	var body string
	var keys help.KeyMap = m.homeKeys
	switch {
	case m.screen == screenEditor && m.session != nil:
		keys = m.edKeys
		toolbar := lipgloss.NewStyle().Width(lay.width).MaxHeight(toolbarHeight).Render(m.renderToolbar())
		var content string
		if m.showPts {
			m.tbl.SetWidth(min(lay.width-4, 40))
			box := m.st.box.Render(m.tbl.View())
			content = lipgloss.Place(lay.canvasW, lay.canvasH, lipgloss.Center, lipgloss.Center, box)
		} else if m.canvas != nil {
			content = m.canvas.String()
		}
		body = lipgloss.JoinVertical(lipgloss.Left, toolbar, content)
	case m.screen == screenSettings:
		keys = m.formKeys
		body = m.renderSettings(lay.width, lay.contentHeight)
	default:
		body = m.l.View()
	}
	body = lipgloss.NewStyle().Width(lay.width).Height(lay.contentHeight).MaxHeight(lay.contentHeight).Render(body)

	// Footer: status and help on the left, hover position on the right
	status := m.st.dim.Render(" " + m.status + " ")
	helpLine := ""
	if m.helpVisible {
		m.help.Width = lay.width
		helpLine = m.help.View(keys)
	}
	coords := ""
	if m.screen == screenEditor && m.hovering {
		coords = m.st.dim.Render(fmt.Sprintf("x=%d y=%d  ", m.hoverX, m.hoverY))
	}
	spacer := padRight("", lay.width-lipgloss.Width(status)-lipgloss.Width(coords))
	footer := lipgloss.JoinVertical(lipgloss.Left, status+spacer+coords, helpLine)
	footer = lipgloss.NewStyle().Width(lay.width).MaxHeight(footerHeight).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return m.st.app.Width(lay.width).Height(m.height).Render(ui)
}
