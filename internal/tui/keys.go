package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
	Log      key.Binding
	Goals    key.Binding
	Metric   key.Binding
	Range    key.Binding
	Dismiss  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Log: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log today"),
		),
		Goals: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "edit goals"),
		),
		Metric: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next metric"),
		),
		Range: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next range"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("enter", "dismiss banner"),
		),
	}
}
