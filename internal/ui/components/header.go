// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the widget title bar. When a destination resolves, the
// subtitle names it and a texture row of the destination's motif is
// rendered beneath the bar.
type Header struct {
	Title       string
	Subtitle    string // destination line, empty until a trip resolves
	Width       int
	UserName    string // greeting name, empty when not logged in
	theme       *styles.Theme
}

// NewHeader creates a Header with default branding.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "Haven",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetDestination updates the subtitle to name the resolved destination.
// An empty name clears the subtitle.
func (h *Header) SetDestination(name string) {
	if name == "" {
		h.Subtitle = ""
		return
	}
	h.Subtitle = "Trip to " + name
}

// SetUser sets the greeting name shown on the right of the bar.
func (h *Header) SetUser(name string) {
	h.UserName = name
}

// View renders the header bar plus the destination texture row when the
// active palette carries one.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	title := h.theme.HeaderTitle.Render(h.Title)
	subtitle := ""
	if h.Subtitle != "" {
		subtitle = h.theme.HeaderSubtitle.Render("  " + h.Subtitle)
	}

	left := title + subtitle

	right := ""
	if h.UserName != "" {
		right = h.theme.HeaderSubtitle.Render(h.UserName)
	}

	// Pad the middle so the greeting sits flush right inside the bar.
	innerWidth := width - 4
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := h.theme.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)

	texture := h.theme.TextureRow(width)
	if texture == "" {
		return bar
	}
	return bar + "\n" + texture
}
