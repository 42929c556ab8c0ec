package tui

import "github.com/charmbracelet/bubbles/key"

type homeKeys struct {
	New      key.Binding
	Open     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newHomeKeys() homeKeys {
	return homeKeys{
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new map")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Help:     key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k homeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Toggle, k.Delete, k.MoveUp, k.MoveDown, k.Settings, k.Help, k.Quit}
}

func (k homeKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type editorKeys struct {
	Path     key.Binding
	Obstacle key.Binding
	Marker   key.Binding
	Start    key.Binding
	End      key.Binding
	Clear    key.Binding
	Rename   key.Binding
	Points   key.Binding
	Save     key.Binding
	Settings key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newEditorKeys() editorKeys {
	return editorKeys{
		Path:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "path")),
		Obstacle: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "obstacle")),
		Marker:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "marker")),
		Start:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "start")),
		End:      key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "end")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Points:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "points")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Path, k.Obstacle, k.Marker, k.Start, k.End, k.Clear, k.Rename, k.Points, k.Save, k.Settings, k.Back, k.Help}
}

func (k editorKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k formKeys) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel} }

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
