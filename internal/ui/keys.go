package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Carousel
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Autoplay key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Toggle autoplay"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Autoplay},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
