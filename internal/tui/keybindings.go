package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Tab    key.Binding
	Enter  key.Binding
	Escape key.Binding

	// Workflow actions
	Analyse key.Binding
	Reset   key.Binding
	Export  key.Binding

	// Parameters
	Floors key.Binding
	Prices key.Binding

	// Global
	Theme key.Binding
	Quit  key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch input mode"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Analyse: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analyse plan"),
	),
	Reset: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new plan"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export document"),
	),
	Floors: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle floors"),
	),
	Prices: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "toggle price estimate"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("ctrl+c", "exit"),
	),
}
