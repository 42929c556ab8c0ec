package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"mapdraw/internal/editor"
	"mapdraw/internal/mapstore"
)

func (m Model) updateEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.renaming {
		switch msg.String() {
		case "esc":
			m.renaming = false
			m.name.Blur()
			m.status = "rename cancelled"
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.name.Value())
			if name == "" {
				m.status = "rename: empty name"
				return m, nil
			}
			m.session.Rename(name)
			m.renaming = false
			m.name.Blur()
			m.status = fmt.Sprintf("renamed to %q", name)
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	k := m.edKeys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, k.Path):
		m.selectTool(mapstore.Path)
	case key.Matches(msg, k.Obstacle):
		m.selectTool(mapstore.Obstacle)
	case key.Matches(msg, k.Marker):
		m.selectTool(mapstore.Marker)
	case key.Matches(msg, k.Start):
		m.selectTool(mapstore.Start)
	case key.Matches(msg, k.End):
		m.selectTool(mapstore.End)
	case key.Matches(msg, k.Clear):
		m.session.Clear()
		m.status = "cleared"
	case key.Matches(msg, k.Rename):
		m.renaming = true
		m.name.SetValue(m.session.Map().Name)
		m.name.CursorEnd()
		m.status = "rename"
		cmd := m.name.Focus()
		return m, cmd
	case key.Matches(msg, k.Points):
		m.showPts = !m.showPts
		if m.showPts {
			m.refreshPointsTable()
		}
	case key.Matches(msg, k.Save):
		if !m.session.Save() {
			m.status = "map no longer exists"
		} else {
			m.status = fmt.Sprintf("saved %q", m.session.Map().Name)
		}
		m.closeEditor()
	case key.Matches(msg, k.Settings):
		cmd := m.openSettings()
		return m, cmd
	case key.Matches(msg, k.Back):
		if m.showPts {
			m.showPts = false
			break
		}
		m.closeEditor()
		m.status = "back to maps"
	default:
		if m.showPts {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) selectTool(t mapstore.PointType) {
	m.session.SelectTool(t)
	m.status = "tool: " + t.Label()
}

func (m Model) updateEditorMouse(msg tea.MouseMsg) Model {
	if m.showPts || m.renaming {
		return m
	}
	lay := m.layout()
	cx, cy, inside := lay.canvasCell(msg.X, msg.Y)
	if !inside {
		m.hovering = false
		if m.session.State() == editor.Drawing {
			m.session.LeaveSurface()
			m.status = "stroke ended at canvas edge"
		}
		return m
	}
	x, y := cellToCanvas(cx, cy)
	m.hovering = true
	m.hoverX, m.hoverY = m.session.Snap(x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.session.BeginStroke(x, y)
		if p, ok := m.session.Last(); ok {
			m.status = fmt.Sprintf("placed %s at %d,%d", p.Type.Label(), p.X, p.Y)
		}
	case tea.MouseActionMotion:
		m.session.ExtendStroke(x, y)
	case tea.MouseActionRelease:
		m.session.EndStroke()
	}
	return m
}

// redrawCanvas renders the working map into the canvas, resizing it to the
// current layout.
func (m *Model) redrawCanvas() {
	if m.session == nil || m.width == 0 || m.height == 0 {
		return
	}
	lay := m.layout()
	bg := m.session.View().Palette.Background
	if m.canvas == nil || m.canvas.cw != lay.canvasW || m.canvas.ch != lay.canvasH || m.canvas.bg != bg {
		m.canvas = newBrailleCanvas(lay.canvasW, lay.canvasH, bg)
	}
	m.session.Render(m.canvas)
	if m.showPts {
		m.refreshPointsTable()
	}
}

// refreshPointsTable lists the working points in placement order.
func (m *Model) refreshPointsTable() {
	pts := m.session.Points()
	rows := make([]table.Row, 0, len(pts))
	for i, p := range pts {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), p.Type.Label(), fmt.Sprintf("%d", p.X), fmt.Sprintf("%d", p.Y)})
	}
	m.tbl.SetRows(rows)
}

func (m Model) renderToolbar() string {
	if m.renaming {
		return m.name.View()
	}
	parts := make([]string, 0, len(mapstore.PointTypes)+1)
	for i, t := range mapstore.PointTypes {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == m.session.Tool() {
			parts = append(parts, m.st.active.Render(label))
		} else {
			parts = append(parts, m.st.tool.Render(label))
		}
	}
	mp := m.session.Map()
	summary := fmt.Sprintf("  %d points  %d segments", len(mp.Points), editor.Segments(mp.Points))
	parts = append(parts, m.st.dim.Render(summary))
	return strings.Join(parts, "")
}
