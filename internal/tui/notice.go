// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 4 * time.Second

// noticeModel is the one-line status shown under the header. It replaces the
// browser alerts of a web page.
type noticeModel struct {
	id      int
	text    string
	isError bool
}

// set shows text and returns the command that hides it later. A newer notice
// is not hidden by an older timer.
func (m *noticeModel) set(text string, isError bool) tea.Cmd {
	m.id++
	m.text = text
	m.isError = isError

	id := m.id
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m *noticeModel) clear(id int) {
	if id == m.id {
		m.text = ""
		m.isError = false
	}
}

func (m noticeModel) View() string {
	switch {
	case m.text == "":
		return ""
	case m.isError:
		return errorStyle.Render(m.text)
	default:
		return successStyle.Render(m.text)
	}
}
