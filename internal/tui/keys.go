package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	refresh   key.Binding
	logout    key.Binding
	copy      key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	logout:    key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("y")),
}
