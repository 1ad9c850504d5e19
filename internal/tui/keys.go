package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Schemes  key.Binding
	Summary  key.Binding
	Scenario key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Schemes:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schemes")),
		Summary:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insights")),
		Scenario: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projection")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next scheme")),
		Prev:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous scheme")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Schemes, k.Summary, k.Scenario, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Schemes, k.Summary, k.Scenario},
		{k.Next, k.Prev, k.Back},
		{k.Help, k.Quit},
	}
}
