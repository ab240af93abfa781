// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm is the body of the Login and Register modals. The entered values
// survive a failed submit so the user can correct them.
type authForm struct {
	title      string
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	switchHint string
}

func newAuthForm(title, switchHint string, labels ...string) authForm {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[0].Focus()

	return authForm{
		title:      title,
		labels:     labels,
		inputs:     inputs,
		switchHint: switchHint,
	}
}

func (f authForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f authForm) focusNext() authForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f authForm) focusPrev() authForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f authForm) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

// reset clears every field and the error.
func (f authForm) reset() authForm {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
	return f
}

func (f authForm) update(msg tea.Msg) (authForm, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f authForm) View() string {
	var b strings.Builder
	b.WriteString(viewTitle(f.title))

	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}
	for i, l := range f.labels {
		b.WriteString(l)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(l)+1))
		b.WriteString("[" + f.inputs[i].View() + "]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(helpStyle.Render("Please wait..."))
	} else {
		b.WriteString(helpStyle.Render("enter submit  tab next field  esc close"))
	}
	if f.switchHint != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(f.switchHint))
	}
	return overlayBoxStyle.Render(b.String())
}
