// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// PLAN LIST CARD
// =============================================================================

// PlanListCard renders the ranked recommendations as a stack of selectable
// plan cards. The first plan carries the "Best Match" badge; the cursor
// moves across plans and Select resolves to the focused one.
type PlanListCard struct {
	Plans    []api.Recommendation
	cursor   int
	resolved bool
	choice   int
	theme    *styles.Theme
}

// NewPlanListCard creates a selector over the given ranked plans.
func NewPlanListCard(theme *styles.Theme, plans []api.Recommendation) *PlanListCard {
	return &PlanListCard{Plans: plans, theme: theme}
}

// FocusNext moves the cursor to the next plan, wrapping.
func (c *PlanListCard) FocusNext() {
	if c.resolved || len(c.Plans) == 0 {
		return
	}
	c.cursor = (c.cursor + 1) % len(c.Plans)
}

// FocusPrev moves the cursor to the previous plan, wrapping.
func (c *PlanListCard) FocusPrev() {
	if c.resolved || len(c.Plans) == 0 {
		return
	}
	c.cursor = (c.cursor - 1 + len(c.Plans)) % len(c.Plans)
}

// Select resolves the card and returns the focused plan. Selecting an
// empty list is a no-op and returns the zero plan.
func (c *PlanListCard) Select() api.Recommendation {
	if len(c.Plans) == 0 {
		return api.Recommendation{}
	}
	c.resolved = true
	c.choice = c.cursor
	return c.Plans[c.choice]
}

// Resolved reports whether a plan has been chosen.
func (c *PlanListCard) Resolved() bool {
	return c.resolved
}

// Reopen clears the resolution so a different plan can be chosen. Used by
// the "Change Plan" path.
func (c *PlanListCard) Reopen() {
	c.resolved = false
}

// Chosen returns the selected plan. Only meaningful after Resolved.
func (c *PlanListCard) Chosen() api.Recommendation {
	return c.Plans[c.choice]
}

// Render draws the plan stack. Implements model.Fragment.
func (c *PlanListCard) Render(width int) string {
	if len(c.Plans) == 0 {
		return ""
	}

	cards := make([]string, 0, len(c.Plans))
	for i, plan := range c.Plans {
		focused := !c.resolved && i == c.cursor
		chosen := c.resolved && i == c.choice
		cards = append(cards, c.renderPlan(plan, i == 0, focused, chosen, width))
	}
	return strings.Join(cards, "\n")
}

func (c *PlanListCard) renderPlan(plan api.Recommendation, best, focused, chosen bool, width int) string {
	inner := cardInnerWidth(width)

	title := c.theme.CardTitle.Render(plan.PlanName)
	if best {
		title += " " + c.theme.BestMatchBadge.Render("Best Match")
	}

	rows := []string{
		title,
		c.theme.Price.Render(FormatPrice(plan.Price, plan.Currency)),
	}

	// Score is the backend's 0..1 fit for this trip.
	if plan.Score > 0 {
		pct := plan.Score * 100
		if pct > 100 {
			pct = 100
		}
		rows = append(rows,
			c.theme.CardLabel.Render("Match")+styles.RenderProgressBar(12, pct))
	}

	if plan.Description != "" {
		rows = append(rows, "", c.theme.CardValue.Render(wordWrap(plan.Description, inner)))
	}

	if len(plan.Pros) > 0 {
		rows = append(rows, "")
		for _, pro := range plan.Pros {
			rows = append(rows, c.theme.ProsItem.Render("+ "+wordWrap(pro, inner-2)))
		}
	}
	if len(plan.Cons) > 0 {
		for _, con := range plan.Cons {
			rows = append(rows, c.theme.ConsItem.Render("- "+wordWrap(con, inner-2)))
		}
	}

	if len(plan.Citations) > 0 {
		rows = append(rows, "",
			c.theme.Citation.Render("Sources: "+strings.Join(plan.Citations, "; ")))
	}

	var button string
	switch {
	case chosen:
		button = c.theme.CardButtonActive.Render("Selected")
	case focused:
		button = c.theme.CardButtonActive.Render("Select This Plan")
	default:
		button = c.theme.CardButton.Render("Select This Plan")
	}
	rows = append(rows, "", button)

	card := c.theme.Card
	if focused {
		card = card.BorderForeground(c.theme.Palette.Colors.Primary)
	}
	return card.Width(minInt(width-4, inner+4)).Render(strings.Join(rows, "\n"))
}

// =============================================================================
// PLAN SUMMARY CARD
// =============================================================================

// SummaryChoice is the user's decision on a plan summary card.
type SummaryChoice int

const (
	SummaryProceed SummaryChoice = iota
	SummaryChangePlan
	summaryChoiceCount
)

// Label returns the button text for the choice.
func (s SummaryChoice) Label() string {
	switch s {
	case SummaryProceed:
		return "Proceed to Payment"
	case SummaryChangePlan:
		return "Change Plan"
	default:
		return "Unknown"
	}
}

// PlanSummaryCard recaps the chosen plan before payment.
type PlanSummaryCard struct {
	Plan     api.Recommendation
	cursor   int
	resolved bool
	choice   SummaryChoice
	theme    *styles.Theme
}

// NewPlanSummaryCard creates a summary card for the chosen plan.
func NewPlanSummaryCard(theme *styles.Theme, plan api.Recommendation) *PlanSummaryCard {
	return &PlanSummaryCard{Plan: plan, theme: theme}
}

// FocusNext moves the cursor forward, wrapping.
func (c *PlanSummaryCard) FocusNext() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor + 1) % int(summaryChoiceCount)
}

// FocusPrev moves the cursor back, wrapping.
func (c *PlanSummaryCard) FocusPrev() {
	if c.resolved {
		return
	}
	c.cursor = (c.cursor - 1 + int(summaryChoiceCount)) % int(summaryChoiceCount)
}

// Select resolves the card at the current cursor.
func (c *PlanSummaryCard) Select() SummaryChoice {
	c.resolved = true
	c.choice = SummaryChoice(c.cursor)
	return c.choice
}

// Resolved reports whether a choice has been made.
func (c *PlanSummaryCard) Resolved() bool {
	return c.resolved
}

// Reopen clears the resolution, used when payment is cancelled and the
// summary is offered again.
func (c *PlanSummaryCard) Reopen() {
	c.resolved = false
	c.cursor = int(SummaryProceed)
}

// Render draws the summary. Implements model.Fragment.
func (c *PlanSummaryCard) Render(width int) string {
	inner := cardInnerWidth(width)

	rows := []string{
		c.theme.CardTitle.Render("Your Selection"),
		"",
		c.theme.CardLabel.Render("Plan") + c.theme.CardValue.Render(c.Plan.PlanName),
		c.theme.CardLabel.Render("Price") + c.theme.Price.Render(FormatPrice(c.Plan.Price, c.Plan.Currency)),
	}

	var buttons []string
	for i := 0; i < int(summaryChoiceCount); i++ {
		label := SummaryChoice(i).Label()
		active := !c.resolved && i == c.cursor
		chosen := c.resolved && SummaryChoice(i) == c.choice

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
