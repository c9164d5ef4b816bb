package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings for nav mode.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Decrease    key.Binding
	Increase    key.Binding
	Select      key.Binding
	Back        key.Binding
	Bottom      key.Binding
	Quit        key.Binding
	Help        key.Binding
	Add         key.Binding
	Delete      key.Binding
	Recommend   key.Binding
	Shortlist   key.Binding
	Reset       key.Binding
	SwitchPane  key.Binding
	NextColumn  key.Binding
	PrevColumn  key.Binding
	HideColumn  key.Binding
	ShowColumns key.Binding
	ColumnJump  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "increase"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit name"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "shortlist"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Recommend: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recommend"),
		),
		Shortlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "shortlist"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset filters"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next col"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev col"),
		),
		HideColumn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "hide col"),
		),
		ShowColumns: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "show cols"),
		),
		ColumnJump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump col"),
		),
	}
}

// InputKeyMap defines keybindings while the name query is focused.
type InputKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

// DefaultInputKeyMap returns the default input keybindings.
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Done: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}
