package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Random     key.Binding
	Official   key.Binding
	Bulbapedia key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
		Prev:       key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev")),
		Random:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
		Official:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "official site")),
		Bulbapedia: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bulbapedia")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Random, k.Official, k.Bulbapedia, k.Quit}
}
