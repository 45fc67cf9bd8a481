// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// INITIAL ACTION CARD
// =============================================================================

// Action identifies one of the widget's entry paths.
type Action int

const (
	ActionIdentityLookup Action = iota
	ActionManualEntry
	ActionUploadDocument
	ActionAskQuestion
	actionCount
)

// Label returns the button text for the action.
func (a Action) Label() string {
	switch a {
	case ActionIdentityLookup:
		return "Retrieve My Booking"
	case ActionManualEntry:
		return "Enter Trip Manually"
	case ActionUploadDocument:
		return "Upload Booking PDF"
	case ActionAskQuestion:
		return "Ask a Question"
	default:
		return "Unknown"
	}
}

// ActionCard is the opening chooser. Once resolved it renders inert with
// the chosen action highlighted, so the transcript keeps an honest record
// of what was picked.
type ActionCard struct {
	cursor   int
	resolved bool
	choice   Action
	theme    *styles.Theme
}

// NewActionCard creates the chooser with the first action focused.
func NewActionCard(theme *styles.Theme) *ActionCard {
	return &ActionCard{theme: theme}
}

// FocusNext moves the cursor forward, wrapping.
func (c *ActionCard) FocusNext() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor + 1) % int(actionCount)
}

// FocusPrev moves the cursor back, wrapping.
func (c *ActionCard) FocusPrev() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor - 1 + int(actionCount)) % int(actionCount)
}

// Select resolves the card at the current cursor and returns the choice.
func (c *ActionCard) Select() Action {
	c.resolved = true
	c.choice = Action(c.cursor)
	return c.choice
}

// Resolved reports whether a choice has been made.
func (c *ActionCard) Resolved() bool {
	return c.resolved
}

// Choice returns the resolved action. Only meaningful after Resolved.
func (c *ActionCard) Choice() Action {
	return c.choice
}

// Render draws the chooser. Implements model.Fragment.
func (c *ActionCard) Render(width int) string {
	inner := cardInnerWidth(width)

	title := c.theme.CardTitle.Render("How can I help you today?")

	var buttons []string
	for i := 0; i < int(actionCount); i++ {
		label := Action(i).Label()
		active := !c.resolved && i == c.cursor
		chosen := c.resolved && Action(i) == c.choice

		switch {
		case active, chosen:
			buttons = append(buttons, c.theme.CardButtonActive.Render(label))
		default:
			buttons = append(buttons, c.theme.CardButton.Render(label))
		}
	}

	var row string
	if c.theme.GetLayoutMode() == styles.LayoutNarrow {
		row = lipgloss.JoinVertical(lipgloss.Left, buttons...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	}

	return c.theme.Card.Width(minInt(width-4, inner+4)).
		Render(title + "\n\n" + row)
}
