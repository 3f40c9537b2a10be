package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	fieldUp     key.Binding
	fieldDown   key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	newItem     key.Binding
	search      key.Binding
	retrySave   key.Binding
	about       key.Binding
	reveal      key.Binding
	revealInput key.Binding
	edit        key.Binding
	delete      key.Binding
	copy        key.Binding
	copyUser    key.Binding
	generate    key.Binding
	lengthUp    key.Binding
	lengthDown  key.Binding
	save        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	fieldUp:     key.NewBinding(key.WithKeys("up")),
	fieldDown:   key.NewBinding(key.WithKeys("down")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	search:      key.NewBinding(key.WithKeys("/")),
	retrySave:   key.NewBinding(key.WithKeys("w")),
	about:       key.NewBinding(key.WithKeys("v")),
	reveal:      key.NewBinding(key.WithKeys("r")),
	revealInput: key.NewBinding(key.WithKeys("ctrl+r")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	copyUser:    key.NewBinding(key.WithKeys("u")),
	generate:    key.NewBinding(key.WithKeys("ctrl+g")),
	lengthUp:    key.NewBinding(key.WithKeys("pgup")),
	lengthDown:  key.NewBinding(key.WithKeys("pgdown")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
