package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mapdraw/internal/editor"
	"mapdraw/internal/mapstore"
)

type mapItem struct {
	m mapstore.Map
}

func (i mapItem) Title() string {
	mark := "[ ]"
	if i.m.Selected {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, i.m.Name)
}

func (i mapItem) Description() string {
	return fmt.Sprintf("#%d  %d points  updated %s", i.m.ID, len(i.m.Points), i.m.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func (i mapItem) FilterValue() string { return i.m.Name }

// syncInbox applies store notifications received since the last call.
func (m *Model) syncInbox() {
	if m.in.mapsChanged {
		m.in.mapsChanged = false
		items := make([]list.Item, 0, len(m.in.maps))
		for _, mp := range m.in.maps {
			items = append(items, mapItem{m: mp})
		}
		m.l.SetItems(items)
	}
	if m.in.redraw {
		m.in.redraw = false
		m.st = newStyles(m.in.settings.Theme)
		m.redrawCanvas()
	}
	if m.session != nil && m.session.Ended() {
		m.closeEditor()
		m.status = "map was deleted"
	}
}

func (m Model) selectedMap() (mapstore.Map, bool) {
	it, ok := m.l.SelectedItem().(mapItem)
	return it.m, ok
}

// openEditor follows the navigation rules: no id creates a map, an unknown
// id stays on the list.
func (m *Model) openEditor(id *int) {
	in := m.in
	s, err := editor.Open(m.maps, m.cfg, id, func() { in.redraw = true }, m.log.WithField("component", "editor"))
	if err != nil {
		if errors.Is(err, mapstore.ErrNotFound) {
			m.status = "map not found"
		} else {
			m.status = "open error: " + err.Error()
		}
		m.screen = screenHome
		return
	}
	m.session = s
	m.screen = screenEditor
	m.renaming = false
	m.showPts = false
	m.hovering = false
	m.status = fmt.Sprintf("editing %q", s.Map().Name)
	m.syncInbox()
}

func (m *Model) closeEditor() {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	m.canvas = nil
	m.formFrom = screenHome
	if m.screen == screenEditor {
		m.screen = screenHome
	}
}

func (m Model) updateHome(msg tea.KeyMsg) (Model, tea.Cmd) {
	// while filtering, keys belong to the list
	if m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.homeKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.homeKeys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	case key.Matches(msg, m.homeKeys.New):
		m.openEditor(nil)
		return m, nil
	case key.Matches(msg, m.homeKeys.Open):
		if mp, ok := m.selectedMap(); ok {
			m.openEditor(&mp.ID)
		}
		return m, nil
	case key.Matches(msg, m.homeKeys.Toggle):
		if mp, ok := m.selectedMap(); ok {
			m.maps.ToggleSelection(mp.ID)
		}
		return m, nil
	case key.Matches(msg, m.homeKeys.Delete):
		if mp, ok := m.selectedMap(); ok {
			m.maps.Delete(mp.ID)
			m.status = fmt.Sprintf("deleted %q", mp.Name)
		}
		return m, nil
	case key.Matches(msg, m.homeKeys.MoveUp):
		m.moveSelected(-1)
		return m, nil
	case key.Matches(msg, m.homeKeys.MoveDown):
		m.moveSelected(1)
		return m, nil
	case key.Matches(msg, m.homeKeys.Settings):
		cmd := m.openSettings()
		return m, cmd
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

// moveSelected reorders the list by one step and keeps the moved map
// selected. Reordering is disabled while a filter hides part of the list.
func (m *Model) moveSelected(delta int) {
	if m.l.FilterState() != list.Unfiltered {
		m.status = "clear the filter to reorder"
		return
	}
	from := m.l.Index()
	to := from + delta
	if !m.maps.Move(from, to) {
		return
	}
	m.syncInbox()
	m.l.Select(to)
}
