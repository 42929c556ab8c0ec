package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"mapdraw/internal/editor"
	"mapdraw/internal/mapstore"
	"mapdraw/internal/settings"
)

type screen int

const (
	screenHome screen = iota
	screenEditor
	screenSettings
)

// Deps are the stores the UI presents.
type Deps struct {
	Maps     *mapstore.Store
	Settings *settings.Store
	// Watcher is optional; when set, external edits to the settings file
	// are reloaded.
	Watcher *settings.Watcher
	Log     *logrus.Entry
}

// inbox collects store notifications. The Model is copied by value on
// every Update, so subscriber callbacks write here and Update drains it.
type inbox struct {
	maps        []mapstore.Map
	mapsChanged bool
	settings    settings.Settings
	redraw      bool
}

type Model struct {
	width  int
	height int

	screen      screen
	helpVisible bool
	status      string

	maps *mapstore.Store
	cfg  *settings.Store
	w    *settings.Watcher
	log  *logrus.Entry

	in   *inbox
	subs []mapstore.Subscription

	st   styles
	help help.Model

	// home
	homeKeys homeKeys
	l        list.Model

	// editor
	edKeys   editorKeys
	session  *editor.Session
	canvas   *brailleCanvas
	renaming bool
	name     textinput.Model
	showPts  bool
	tbl      table.Model

	// hover state, in canvas pixels snapped to the grid
	hovering bool
	hoverX   int
	hoverY   int

	// settings form
	formKeys formKeys
	form     settingsForm
	// screen the form returns to
	formFrom screen
}

func New(d Deps) Model {
	log := d.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	m := Model{
		helpVisible: true,
		status:      "mapdraw ready",
		maps:        d.Maps,
		cfg:         d.Settings,
		w:           d.Watcher,
		log:         log,
		in:          &inbox{},
		help:        help.New(),
		homeKeys:    newHomeKeys(),
		edKeys:      newEditorKeys(),
		formKeys:    newFormKeys(),
	}
	// list setup
	dl := list.NewDefaultDelegate()
	m.l = list.New(nil, dl, 0, 0)
	m.l.Title = "Maps"
	m.l.SetShowHelp(false)
	m.l.SetFilteringEnabled(true)
	m.l.DisableQuitKeybindings()
	// rename prompt
	m.name = textinput.New()
	m.name.Prompt = "name: "
	m.name.CharLimit = 64
	// points table
	m.tbl = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "type", Width: 10},
			{Title: "x", Width: 6},
			{Title: "y", Width: 6},
		}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	m.form = newSettingsForm()

	in := m.in
	m.subs = append(m.subs,
		m.maps.SubscribeList(func(ms []mapstore.Map) {
			in.maps = ms
			in.mapsChanged = true
		}),
		m.cfg.Subscribe(func(s settings.Settings) {
			in.settings = s
			in.redraw = true
		}),
	)
	m.syncInbox()
	return m
}

// NewWithMap opens the editor on a map at launch. An unknown id leaves the
// user on the list with a status message.
func NewWithMap(d Deps, id int) Model {
	m := New(d)
	m.openEditor(&id)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.w == nil {
		return nil
	}
	return waitForSettingsFile(m.w)
}

// Close releases the store subscriptions held by the UI.
func (m Model) Close() {
	if m.session != nil {
		m.session.Close()
	}
	for _, s := range m.subs {
		s.Close()
	}
}
