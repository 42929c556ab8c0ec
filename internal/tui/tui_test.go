package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapdraw/internal/editor"
	"mapdraw/internal/mapstore"
	"mapdraw/internal/settings"
)

func TestPxToDot(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {7, 1}, {8, 2}, {-3, -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pxToDot(c.in), "pxToDot(%d)", c.in)
	}
}

func TestCellToCanvas(t *testing.T) {
	x, y := cellToCanvas(0, 0)
	assert.Equal(t, 2.5, x)
	assert.Equal(t, 7.5, y)
	x, y = cellToCanvas(1, 1)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 27.5, y)
}

func TestBrailleCanvas(t *testing.T) {
	c := newBrailleCanvas(2, 1, "")
	w, h := c.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)

	c.Line(0, 0, 0, 15, "#fff")
	assert.Equal(t, rune(0x2847), c.buf.glyph(0, 0))
	assert.True(t, c.buf.pixel(0, 3))
	assert.False(t, c.buf.pixel(1, 0))

	c.Dot(10, 10, "#888")
	c.Disk(10, 10, 0, "#f00")
	assert.True(t, c.buf.pixel(2, 2))
	assert.Equal(t, "#f00", c.color[0][1])
	// a lower layer never repaints a point
	c.Dot(15, 10, "#888")
	assert.Equal(t, "#f00", c.color[0][1])

	c.Clear()
	assert.Equal(t, ' ', c.buf.glyph(0, 0))
	assert.Empty(t, c.color[0][1])
}

func TestBrailleCanvasString(t *testing.T) {
	c := newBrailleCanvas(3, 2, "#313033")
	c.Line(0, 0, 0, 15, "#ffffff")
	c.Disk(20, 20, 0, "#ff0000")

	out := c.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], string(rune(0x2847)))
	assert.Contains(t, lines[1], string(rune(0x2801)))
}

func TestDiskOutsideCanvasIsIgnored(t *testing.T) {
	c := newBrailleCanvas(1, 1, "")
	assert.NotPanics(t, func() { c.Disk(-40, 200, 10, "#fff") })
	assert.Equal(t, ' ', c.buf.glyph(0, 0))
}

func newTestModel(t *testing.T, maps *mapstore.Store) (Model, *settings.Store) {
	t.Helper()
	cfg := settings.NewStore(settings.MemKV{}, nil)
	cfg.Load()
	m := New(Deps{Maps: maps, Settings: cfg})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	t.Cleanup(m.Close)
	return m, cfg
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// Row 3 column 2 is canvas cell (2,1); with the default grid of 20 it
// snaps to (20,20). Column 4 snaps to (40,20).
func mouse(x, y int, a tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: tea.MouseButtonLeft}
}

func TestDrawAndLeave(t *testing.T) {
	maps := mapstore.New()
	m, _ := newTestModel(t, maps)

	m = send(m, runes("n"))
	require.Equal(t, screenEditor, m.screen)
	require.NotNil(t, m.session)
	require.Equal(t, 1, maps.Len())
	id := m.session.Map().ID
	assert.Equal(t, editor.NewMapName, m.session.Map().Name)
	require.NotNil(t, m.canvas)

	m = send(m, mouse(2, 3, tea.MouseActionPress))
	m = send(m, mouse(4, 3, tea.MouseActionMotion))
	m = send(m, mouse(4, 3, tea.MouseActionMotion))
	m = send(m, mouse(4, 3, tea.MouseActionRelease))

	stored, err := maps.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []mapstore.Point{
		{X: 20, Y: 20, Type: mapstore.Path},
		{X: 40, Y: 20, Type: mapstore.Path},
	}, stored.Points)
	assert.True(t, m.hovering)
	assert.Equal(t, 40, m.hoverX)
	assert.Equal(t, 20, m.hoverY)

	// leaving the canvas ends the stroke
	m = send(m, mouse(2, 3, tea.MouseActionPress))
	m = send(m, mouse(2, 0, tea.MouseActionMotion))
	assert.Equal(t, editor.Idle, m.session.State())
	assert.False(t, m.hovering)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenHome, m.screen)
	assert.Nil(t, m.session)
	assert.Nil(t, maps.Active())
}

func TestToolKeysAndUniqueStart(t *testing.T) {
	maps := mapstore.New()
	m, _ := newTestModel(t, maps)
	m = send(m, runes("n"))
	id := m.session.Map().ID

	m = send(m, runes("4"))
	assert.Equal(t, mapstore.Start, m.session.Tool())
	m = send(m, mouse(2, 3, tea.MouseActionPress))
	m = send(m, mouse(2, 3, tea.MouseActionRelease))
	m = send(m, mouse(4, 3, tea.MouseActionPress))
	m = send(m, mouse(4, 3, tea.MouseActionRelease))

	stored, err := maps.Get(id)
	require.NoError(t, err)
	require.Len(t, stored.Points, 1)
	assert.Equal(t, mapstore.Point{X: 40, Y: 20, Type: mapstore.Start}, stored.Points[0])

	m = send(m, runes("c"))
	stored, _ = maps.Get(id)
	assert.Empty(t, stored.Points)
}

func TestRename(t *testing.T) {
	maps := mapstore.New()
	m, _ := newTestModel(t, maps)
	m = send(m, runes("n"))
	id := m.session.Map().ID

	m = send(m, runes("r"))
	require.True(t, m.renaming)
	m.name.SetValue("Garden")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.renaming)

	stored, _ := maps.Get(id)
	assert.Equal(t, "Garden", stored.Name)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, screenHome, m.screen)
}

func TestOpenUnknownMapStaysHome(t *testing.T) {
	maps := mapstore.New()
	cfg := settings.NewStore(settings.MemKV{}, nil)
	m := NewWithMap(Deps{Maps: maps, Settings: cfg}, 42)
	defer m.Close()

	assert.Equal(t, screenHome, m.screen)
	assert.Nil(t, m.session)
	assert.Equal(t, "map not found", m.status)
	assert.Zero(t, maps.Len())
}

func TestDeletedMapClosesEditor(t *testing.T) {
	maps := mapstore.New()
	mp := maps.Create("Doomed")
	m, _ := newTestModel(t, maps)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenEditor, m.screen)

	maps.Delete(mp.ID)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, screenHome, m.screen)
	assert.Nil(t, m.session)
	assert.Equal(t, "map was deleted", m.status)
}

func TestHomeListOperations(t *testing.T) {
	maps := mapstore.New()
	a := maps.Create("A")
	maps.Create("B")
	m, _ := newTestModel(t, maps)
	require.Len(t, m.l.Items(), 2)

	m = send(m, runes("J"))
	names := []string{maps.List()[0].Name, maps.List()[1].Name}
	assert.Equal(t, []string{"B", "A"}, names)
	assert.Equal(t, 1, m.l.Index())

	m = send(m, runes("K"))
	assert.Equal(t, "A", maps.List()[0].Name)
	assert.Equal(t, 0, m.l.Index())

	m = send(m, runes(" "))
	got, _ := maps.Get(a.ID)
	assert.True(t, got.Selected)

	m = send(m, runes("d"))
	assert.Equal(t, 1, maps.Len())
	assert.Len(t, m.l.Items(), 1)
}

func TestSettingsForm(t *testing.T) {
	maps := mapstore.New()
	m, cfg := newTestModel(t, maps)

	m = send(m, runes("s"))
	require.Equal(t, screenSettings, m.screen)
	assert.Equal(t, "20", m.form.inputs[1].Value())

	m.form.inputs[1].SetValue("99")
	m.form.inputs[2].SetValue("abc")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenSettings, m.screen)
	assert.Contains(t, m.form.errs, "gridSize")
	assert.Equal(t, "must be a number", m.form.errs["pointSize"])
	assert.Equal(t, 20, cfg.Get().GridSize)

	m.form.inputs[1].SetValue("30")
	m.form.inputs[2].SetValue("4")
	m.form.inputs[3].SetValue("Dark")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, 30, cfg.Get().GridSize)
	assert.Equal(t, 4, cfg.Get().PointSize)
	assert.Equal(t, settings.Dark, cfg.Get().Theme)
}

func TestSettingsChangeRestylesCanvas(t *testing.T) {
	maps := mapstore.New()
	m, cfg := newTestModel(t, maps)
	m = send(m, runes("n"))
	require.NotNil(t, m.canvas)

	cfg.Patch(func(s *settings.Settings) { s.Theme = settings.Dark })
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, settings.PaletteFor(settings.Dark).Background, m.canvas.bg)
}

func TestViewRendersEachScreen(t *testing.T) {
	maps := mapstore.New()
	maps.Create("Yard")
	m, _ := newTestModel(t, maps)

	assert.Contains(t, m.View(), "Yard")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Yard")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, runes("s"))
	assert.Contains(t, m.View(), "server url")
}

func TestSettingsFromEditorRescalesCanvas(t *testing.T) {
	maps := mapstore.New()
	m, cfg := newTestModel(t, maps)
	m = send(m, runes("n"))
	id := m.session.Map().ID
	m = send(m, mouse(2, 3, tea.MouseActionPress))
	m = send(m, mouse(2, 3, tea.MouseActionRelease))

	// grid 20: a grid dot every 4 braille dots
	require.True(t, m.canvas.buf.pixel(4, 0))

	m = send(m, runes("s"))
	require.Equal(t, screenSettings, m.screen)
	require.NotNil(t, m.session)
	m.form.inputs[1].SetValue("40")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenEditor, m.screen)
	require.NotNil(t, m.session)
	assert.Equal(t, 40, cfg.Get().GridSize)
	// grid 40: dots every 8, the old spacing is gone
	assert.False(t, m.canvas.buf.pixel(4, 0))
	assert.True(t, m.canvas.buf.pixel(8, 0))
	// the stored point keeps its coordinates
	assert.True(t, m.canvas.buf.pixel(4, 4))
	stored, err := maps.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []mapstore.Point{{X: 20, Y: 20, Type: mapstore.Path}}, stored.Points)

	m = send(m, runes("s"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenEditor, m.screen)
}
