package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	NextColumn key.Binding
	PrevColumn key.Binding
	Sort       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next page")),
		Prev:       key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev page")),
		First:      key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "first page")),
		Last:       key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "last page")),
		NextColumn: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sort column")),
		PrevColumn: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev sort column")),
		Sort:       key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Sort, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.NextColumn, k.PrevColumn, k.Sort},
		{k.Help, k.Quit},
	}
}
