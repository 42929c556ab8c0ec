package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mapdraw/internal/settings"
)

// Field order of the form. The keys match the settings JSON names so
// validation errors land on the right input.
var formFields = []struct {
	key   string
	label string
}{
	{"serverUrl", "server url"},
	{"gridSize", "grid size"},
	{"pointSize", "point size"},
	{"theme", "theme"},
}

type settingsForm struct {
	inputs []textinput.Model
	focus  int
	errs   map[string]string
}

func newSettingsForm() settingsForm {
	f := settingsForm{errs: map[string]string{}}
	for _, fd := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Placeholder = fd.label
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[1].CharLimit = 3
	f.inputs[2].CharLimit = 3
	return f
}

func (f *settingsForm) load(s settings.Settings) {
	f.inputs[0].SetValue(s.ServerURL)
	f.inputs[1].SetValue(strconv.Itoa(s.GridSize))
	f.inputs[2].SetValue(strconv.Itoa(s.PointSize))
	f.inputs[3].SetValue(string(s.Theme))
	f.errs = map[string]string{}
}

func (f *settingsForm) focusOn(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

// values reads the inputs back into Settings. Numbers that do not parse
// are reported under their field and skip range validation.
func (f settingsForm) values() (settings.Settings, map[string]string) {
	s := settings.Settings{
		ServerURL: strings.TrimSpace(f.inputs[0].Value()),
		Theme:     settings.Theme(strings.ToLower(strings.TrimSpace(f.inputs[3].Value()))),
	}
	bad := map[string]string{}
	var err error
	if s.GridSize, err = strconv.Atoi(strings.TrimSpace(f.inputs[1].Value())); err != nil {
		bad["gridSize"] = "must be a number"
	}
	if s.PointSize, err = strconv.Atoi(strings.TrimSpace(f.inputs[2].Value())); err != nil {
		bad["pointSize"] = "must be a number"
	}
	for k, v := range settings.FieldErrors(settings.Validate(s)) {
		if _, ok := bad[k]; !ok {
			bad[k] = v
		}
	}
	return s, bad
}

// openSettings shows the form over the current screen. An open editor
// stays open so settings changes redraw it.
func (m *Model) openSettings() tea.Cmd {
	m.form.load(m.cfg.Get())
	m.formFrom = m.screen
	m.screen = screenSettings
	m.status = "settings"
	return m.form.focusOn(0)
}

// closeSettings returns to the screen the form was opened from.
func (m *Model) closeSettings() {
	m.screen = m.formFrom
	if m.screen == screenEditor && m.session == nil {
		m.screen = screenHome
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.closeSettings()
		m.status = "settings unchanged"
		return m, nil
	case key.Matches(msg, m.formKeys.Next):
		cmd := m.form.focusOn(m.form.focus + 1)
		return m, cmd
	case key.Matches(msg, m.formKeys.Prev):
		cmd := m.form.focusOn(m.form.focus - 1)
		return m, cmd
	case key.Matches(msg, m.formKeys.Submit):
		s, bad := m.form.values()
		m.form.errs = bad
		if len(bad) > 0 {
			m.status = fmt.Sprintf("%d invalid field(s)", len(bad))
			return m, nil
		}
		m.cfg.Update(s)
		m.log.WithField("theme", s.Theme).Info("settings updated")
		m.closeSettings()
		m.status = "settings saved"
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) renderSettings(width, height int) string {
	rows := make([]string, 0, 2*len(formFields)+2)
	rows = append(rows, m.st.title.Render("Settings"), "")
	for i, fd := range formFields {
		line := m.st.label.Render(fd.label) + m.form.inputs[i].View()
		rows = append(rows, line)
		if msg, ok := m.form.errs[fd.key]; ok {
			rows = append(rows, m.st.label.Render("")+m.st.err.Render(msg))
		}
	}
	rows = append(rows, "", m.st.dim.Render(fmt.Sprintf("grid %d-%d  point %d-%d  theme light|dark",
		settings.MinGridSize, settings.MaxGridSize, settings.MinPointSize, settings.MaxPointSize)))
	box := m.st.box.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
