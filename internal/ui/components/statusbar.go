// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/ui/styles"
	"github.com/havenlabs/haven-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the widget's activity state shown in the bar.
type Status int

const (
	StatusReady Status = iota
	StatusWaiting
	StatusProcessing
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusWaiting:
		return "Waiting..."
	case StatusProcessing:
		return "Processing..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status.
// ACCESSIBILITY: distinct shapes alongside colors for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusWaiting:
		return styles.StatusIndicators.Pending
	case StatusProcessing:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// Shortcut is one key hint shown on the right of the bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: current step on the left, key hints on
// the right.
type StatusBar struct {
	StepLabel string // human name for the current flow step
	Status    Status
	Width     int
	Shortcuts []Shortcut
	theme     *styles.Theme
}

// NewStatusBar creates a status bar with default shortcuts.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		StepLabel: "Welcome",
		Status:    StatusReady,
		Width:     80,
		Shortcuts: []Shortcut{
			{Key: "tab", Desc: "move"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "back"},
		},
		theme: theme,
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStep updates the current step label.
func (s *StatusBar) SetStep(label string) {
	s.StepLabel = label
}

// SetStatus updates the activity state.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetShortcuts replaces the key hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// View renders the status bar.
func (s *StatusBar) View() string {
	left := s.Status.Icon() + " " + s.Status.String()
	if s.StepLabel != "" {
		left += "  |  " + s.StepLabel
	}

	var hints []string
	for _, sc := range s.Shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		// Narrow terminal: drop the hints, then the step label, rather
		// than wrap the bar.
		right = ""
		left = util.TruncateWidth(left, s.Width-4)
		gap = s.Width - lipgloss.Width(left) - 4
		if gap < 1 {
			gap = 1
		}
	}

	return s.theme.StatusBar.Width(s.Width).
		Render(left + strings.Repeat(" ", gap) + right)
}
