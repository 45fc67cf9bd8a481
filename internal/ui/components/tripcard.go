// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
	"github.com/havenlabs/haven-tui/internal/util"
)

// =============================================================================
// TRIP DETAILS CARD
// =============================================================================

// TripChoice is the user's decision on a trip details card.
type TripChoice int

const (
	TripConfirm TripChoice = iota
	TripEdit
	tripChoiceCount
)

// Label returns the button text for the choice.
func (t TripChoice) Label() string {
	switch t {
	case TripConfirm:
		return "Looks Good"
	case TripEdit:
		return "Edit Details"
	default:
		return "Unknown"
	}
}

// TripCard shows a resolved trip for review before recommendations are
// fetched. The record it displays is a snapshot: edits happen in the
// controller's form buffer and produce a fresh card.
type TripCard struct {
	Trip     api.TripRecord
	cursor   int
	resolved bool
	choice   TripChoice
	theme    *styles.Theme
}

// NewTripCard creates a review card for the given trip snapshot.
func NewTripCard(theme *styles.Theme, trip api.TripRecord) *TripCard {
	return &TripCard{Trip: trip, theme: theme}
}

// FocusNext moves the cursor forward, wrapping.
func (c *TripCard) FocusNext() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor + 1) % int(tripChoiceCount)
}

// FocusPrev moves the cursor back, wrapping.
func (c *TripCard) FocusPrev() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor - 1 + int(tripChoiceCount)) % int(tripChoiceCount)
}

// Select resolves the card at the current cursor.
func (c *TripCard) Select() TripChoice {
	c.resolved = true
	c.choice = TripChoice(c.cursor)
	return c.choice
}

// Resolved reports whether a choice has been made.
func (c *TripCard) Resolved() bool {
	return c.resolved
}

// Reopen clears the resolution so the card accepts input again. Used when
// an edit is cancelled and the review resumes on the same card.
func (c *TripCard) Reopen() {
	c.resolved = false
	c.cursor = int(TripConfirm)
}

// Render draws the trip details. Implements model.Fragment.
func (c *TripCard) Render(width int) string {
	inner := cardInnerWidth(width)

	rows := []string{
		c.theme.CardTitle.Render("Your Trip Details"),
		"",
		c.row("From", c.Trip.Origin),
		c.row("To", c.Trip.Destination),
		c.row("Departure", c.Trip.DepartureDate),
	}

	if c.Trip.ReturnDate != "" {
		rows = append(rows, c.row("Return", c.Trip.ReturnDate))
	}

	travelers := util.IntToString(c.Trip.NumTravelers) + " " +
		pluralize(c.Trip.NumTravelers, "traveler", "travelers")
	if len(c.Trip.Ages) > 0 {
		travelers += " (ages " + joinInts(c.Trip.Ages) + ")"
	}
	rows = append(rows,
		c.row("Travelers", travelers),
		c.row("Trip type", formatTripType(c.Trip.TripType)),
		c.row("Flexi flight", yesNo(c.Trip.FlexiFlight)),
	)

	if n := len(c.Trip.ClaimsHistory); n > 0 {
		rows = append(rows, c.row("Past claims",
			util.IntToString(n)+" "+pluralize(n, "claim", "claims")+" on record"))
	}

	var buttons []string
	for i := 0; i < int(tripChoiceCount); i++ {
		label := TripChoice(i).Label()
		active := !c.resolved && i == c.cursor
		chosen := c.resolved && TripChoice(i) == c.choice

		if active || chosen {
			buttons = append(buttons, c.theme.CardButtonActive.Render(label))
		} else {
			buttons = append(buttons, c.theme.CardButton.Render(label))
		}
	}

	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	return c.theme.Card.Width(minInt(width-4, inner+4)).
		Render(strings.Join(rows, "\n"))
}

func (c *TripCard) row(label, value string) string {
	return c.theme.CardLabel.Render(label) + c.theme.CardValue.Render(value)
}

// =============================================================================
// FIELD FORMATTING
// =============================================================================

// formatTripType maps wire trip types to display text.
func formatTripType(tripType string) string {
	switch tripType {
	case "round_trip":
		return "Round trip"
	case "one_way":
		return "One way"
	default:
		return tripType
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// joinInts renders a slice of ints as "30, 28".
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = util.IntToString(v)
	}
	return strings.Join(parts, ", ")
}
