// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// Letter keys go to the focused text input, so page actions use ctrl
// bindings. Plain letters only act while the feed has focus.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	submit    key.Binding
	login     key.Binding
	register  key.Binding
	logout    key.Binding
	buildInfo key.Binding
	refresh   key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	login:     key.NewBinding(key.WithKeys("ctrl+l")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
	logout:    key.NewBinding(key.WithKeys("ctrl+o")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
