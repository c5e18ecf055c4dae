package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	quit       key.Binding
	accounts   key.Binding
	newItem    key.Binding
	refresh    key.Binding
	refreshAll key.Binding
	disable    key.Binding
	delete     key.Binding
	copy       key.Binding
	paste      key.Binding
	info       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	accounts:   key.NewBinding(key.WithKeys("a")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	refreshAll: key.NewBinding(key.WithKeys("R")),
	disable:    key.NewBinding(key.WithKeys("d")),
	delete:     key.NewBinding(key.WithKeys("x")),
	copy:       key.NewBinding(key.WithKeys("c")),
	paste:      key.NewBinding(key.WithKeys("ctrl+v")),
	info:       key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
