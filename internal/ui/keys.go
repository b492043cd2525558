package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the footer and on the help page.
// Dispatch itself happens in the input modes.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Search    key.Binding
	ClearFind key.Binding
	Chip      key.Binding
	NextChip  key.Binding
	PrevChip  key.Binding
	Toggle    key.Binding
	AllTags   key.Binding
	ClearTags key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings of the normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous project")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next project")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first project")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last project")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearFind: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Chip:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "toggle ranked tag")),
		NextChip:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tag chip")),
		PrevChip:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tag chip")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle focused chip")),
		AllTags:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "all tags")),
		ClearTags: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear tags")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Chip, k.AllTags, k.ClearTags, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.ClearFind},
		{k.Chip, k.NextChip, k.PrevChip, k.Toggle, k.AllTags, k.ClearTags},
		{k.Help, k.Quit},
	}
}
