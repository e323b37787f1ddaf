package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the single-key commands. Arrow keys alias the vi-style
// letters; bubbletea decodes the escape sequences before they get here.
type keyMap struct {
	Down         key.Binding
	Up           key.Binding
	Enter        key.Binding
	Parent       key.Binding
	Home         key.Binding
	Root         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	ToggleHidden key.Binding
	Refresh      key.Binding
	Mark         key.Binding
	Delete       key.Binding
	Editor       key.Binding
	Shell        key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Enter: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/→", "enter directory / open file"),
		),
		Parent: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "parent directory"),
		),
		Home: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "go home"),
		),
		Root: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "go to root"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "jump to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "jump to bottom"),
		),
		ToggleHidden: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "toggle hidden files"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete marked"),
		),
		Editor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit in $EDITOR"),
		),
		Shell: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spawn shell"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
