package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. Plain letters
// belong to the search field, so every command uses a control or function key.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Escape     key.Binding

	// Search
	Fetch     key.Binding
	NextMedia key.Binding
	PrevMedia key.Binding

	// Gallery
	Play key.Binding

	// Log overlay
	AttemptOnly key.Binding
	Refresh     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Logs"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		Fetch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Get images"),
		),
		NextMedia: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next media"),
		),
		PrevMedia: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous media"),
		),

		Play: key.NewBinding(
			key.WithKeys("ctrl+p", "f2"),
			key.WithHelp("ctrl+p", "Play/Pause"),
		),

		AttemptOnly: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Last search only"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fetch, k.NextMedia, k.Play, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fetch, k.NextMedia, k.PrevMedia},
		{k.Play},
		{k.Logs, k.AttemptOnly, k.Refresh, k.Escape},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
