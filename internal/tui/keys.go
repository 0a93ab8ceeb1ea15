package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	save key.Binding
	quit key.Binding
	yes  key.Binding
	no   key.Binding
}

var keys = keyMap{
	save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	yes:  key.NewBinding(key.WithKeys("y", "Y")),
	no:   key.NewBinding(key.WithKeys("n", "N", "esc")),
}
