package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the form understands. It doubles as the
// help.KeyMap rendered at the bottom of the screen.
type KeyMap struct {
	Submit    key.Binding
	NextPane  key.Binding
	PrevPane  key.Binding
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Back      key.Binding
	Clear     key.Binding
	Copy      key.Binding
	History   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "up", "h", "k"),
		key.WithHelp("←/h", "previous option"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "down", "l", "j"),
		key.WithHelp("→/l", "next option"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first option"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last option"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "/", "i"),
		key.WithHelp("esc", "back to query"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear query"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy url"),
	),
	History: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "history"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextPane, k.Copy, k.History, k.Help, k.ForceQuit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear, k.Copy, k.History},
		{k.NextPane, k.PrevPane, k.Back},
		{k.Prev, k.Next, k.First, k.Last},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
