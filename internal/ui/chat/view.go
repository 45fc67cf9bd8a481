// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/ui/components"
)

// =============================================================================
// LAYOUT
// =============================================================================

// SetSize lays the widget out for a new terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.input.SetWidth(width)
	m.statusBar.SetWidth(width)

	headerHeight := 0
	if !m.compact {
		headerHeight = lipgloss.Height(m.header.View())
	}
	inputHeight := 3
	statusHeight := 1
	typingHeight := 1

	viewportHeight := height - headerHeight - inputHeight - statusHeight - typingHeight
	if viewportHeight < 4 {
		viewportHeight = 4
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight

	m.refreshViewport()
}

// refreshViewport rebuilds the transcript render and keeps the view
// pinned to the latest message.
func (m *Model) refreshViewport() {
	gap := "\n\n"
	if m.compact {
		gap = "\n"
	}

	var b strings.Builder
	for i, msg := range m.transcript.Messages() {
		if i > 0 {
			b.WriteString(gap)
		}
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.SetWidth(m.viewport.Width)
		b.WriteString(bubble.View())
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole widget: header, transcript, typing indicator,
// the form or input row, and the status bar.
func (m *Model) View() string {
	var sections []string

	if !m.compact {
		sections = append(sections, m.header.View())
	}
	sections = append(sections, m.viewport.View())

	if indicator := m.typing.View(); indicator != "" {
		sections = append(sections, indicator)
	} else {
		sections = append(sections, "")
	}

	if m.form != nil {
		sections = append(sections, m.form.View(m.width))
	} else {
		sections = append(sections, m.input.View())
	}

	sections = append(sections, m.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
