// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-comment-board/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
)

// commentFormModel is the comment draft. While a session is held the name
// and e-mail come from the user and cannot be edited.
type commentFormModel struct {
	inputs []textinput.Model
	focus  int
	frozen bool
}

func newCommentFormModel() commentFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
	}
	inputs[fieldName].Placeholder = "Your name"
	inputs[fieldName].CharLimit = 100
	inputs[fieldEmail].Placeholder = "Your email"
	inputs[fieldEmail].CharLimit = 254
	inputs[fieldMessage].Placeholder = "Your comment"
	inputs[fieldMessage].CharLimit = 1000

	m := commentFormModel{inputs: inputs}
	m.inputs[fieldName].Focus()
	return m
}

func (m commentFormModel) draft() models.CommentDraft {
	return models.CommentDraft{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Message: m.inputs[fieldMessage].Value(),
	}
}

// withIdentity pre-fills and freezes name and e-mail.
func (m commentFormModel) withIdentity(u models.User) commentFormModel {
	d := m.draft().WithIdentity(u)
	m.inputs[fieldName].SetValue(d.Name)
	m.inputs[fieldEmail].SetValue(d.Email)
	m.frozen = true
	return m.focusField(fieldMessage)
}

// reset empties every field and unfreezes the identity.
func (m commentFormModel) reset() commentFormModel {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.frozen = false
	return m.focusField(fieldName)
}

func (m commentFormModel) clearMessage() commentFormModel {
	m.inputs[fieldMessage].Reset()
	return m
}

func (m commentFormModel) editable(field int) bool {
	return field == fieldMessage || !m.frozen
}

func (m commentFormModel) focusField(field int) commentFormModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[field].Focus()
	return m
}

func (m commentFormModel) blur() commentFormModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

// next moves to the following editable field. It reports false when focus
// leaves the form.
func (m commentFormModel) next() (commentFormModel, bool) {
	for f := m.focus + 1; f < len(m.inputs); f++ {
		if m.editable(f) {
			return m.focusField(f), true
		}
	}
	return m.blur(), false
}

// prev moves to the previous editable field. It reports false when focus
// leaves the form.
func (m commentFormModel) prev() (commentFormModel, bool) {
	for f := m.focus - 1; f >= 0; f-- {
		if m.editable(f) {
			return m.focusField(f), true
		}
	}
	return m.blur(), false
}

// first focuses the first editable field.
func (m commentFormModel) first() commentFormModel {
	if m.frozen {
		return m.focusField(fieldMessage)
	}
	return m.focusField(fieldName)
}

func (m commentFormModel) update(msg tea.Msg) (commentFormModel, tea.Cmd) {
	if !m.editable(m.focus) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m commentFormModel) View(focused, loading bool) string {
	var b strings.Builder
	b.WriteString(viewTitle("Leave a comment"))

	labels := []string{"Name:   ", "Email:  ", "Message:"}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" ")
		if m.editable(i) {
			b.WriteString("[" + m.inputs[i].View() + "]")
		} else {
			b.WriteString(frozenStyle.Render(m.inputs[i].Value()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case loading:
		b.WriteString(helpStyle.Render("Submitting..."))
	case focused:
		b.WriteString(helpStyle.Render("enter / ctrl+s submit  tab next field"))
	}
	return b.String()
}
