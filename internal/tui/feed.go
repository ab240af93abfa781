// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-comment-board/models"
)

const feedMessageWidth = 60

// feedModel is the latest fetched comment list. A failed fetch keeps the
// previous list and only sets status.
type feedModel struct {
	comments []models.Comment
	idx      int
	loading  bool
	status   string
}

func newFeedModel() feedModel {
	return feedModel{loading: true}
}

// replace swaps the list wholesale and keeps the cursor in range.
func (m feedModel) replace(comments []models.Comment) feedModel {
	m.comments = comments
	m.status = ""
	if m.idx >= len(m.comments) {
		m.idx = len(m.comments) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m feedModel) current() (models.Comment, bool) {
	if len(m.comments) == 0 || m.idx < 0 || m.idx >= len(m.comments) {
		return models.Comment{}, false
	}
	return m.comments[m.idx], true
}

func (m feedModel) View(focused bool) string {
	var b strings.Builder
	b.WriteString(viewTitle("Comments"))

	switch {
	case m.loading && len(m.comments) == 0:
		b.WriteString("Loading...\n")
	case len(m.comments) == 0:
		b.WriteString("No comments yet\n")
	default:
		for i, c := range m.comments {
			cursor := "  "
			line := fmt.Sprintf("%s  %s: %s", formatDate(c.CreatedAt), c.Name, fitText(singleLine(c.Message), feedMessageWidth))
			if focused && i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	if focused {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ move  c copy  r refresh  tab form"))
	}
	return b.String()
}
