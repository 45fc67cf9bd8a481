// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// PAYMENT METHOD CARD
// =============================================================================

// PaymentMethod identifies how the user pays.
type PaymentMethod int

const (
	PayNow PaymentMethod = iota
	CreditCard
	paymentMethodCount
)

// Label returns the button text for the method.
func (m PaymentMethod) Label() string {
	switch m {
	case PayNow:
		return "PayNow"
	case CreditCard:
		return "Credit Card"
	default:
		return "Unknown"
	}
}

// PaymentEvent is what a Select on the payment card resolved to.
type PaymentEvent int

const (
	PaymentNone PaymentEvent = iota
	PaymentMethodChosen
	PaymentConfirmed
	PaymentCancelled
)

// payStage tracks where the payment card is in its local flow.
type payStage int

const (
	payStageMethod payStage = iota
	payStageConfirm
	payStageProcessing
	payStageDone
)

// PaymentCard walks the user through paying for the chosen plan: pick a
// method, confirm (PayNow shows a QR placeholder, card shows a charge
// summary), then a processing hold driven by the controller. No real
// charge happens anywhere.
type PaymentCard struct {
	Plan   api.Recommendation
	stage  payStage
	method PaymentMethod
	cursor int
	theme  *styles.Theme
}

// NewPaymentCard creates a payment card for the chosen plan.
func NewPaymentCard(theme *styles.Theme, plan api.Recommendation) *PaymentCard {
	return &PaymentCard{Plan: plan, theme: theme}
}

// Method returns the chosen payment method.
func (c *PaymentCard) Method() PaymentMethod {
	return c.method
}

// Processing reports whether the card is in its simulated processing hold.
func (c *PaymentCard) Processing() bool {
	return c.stage == payStageProcessing
}

// Done reports whether payment completed.
func (c *PaymentCard) Done() bool {
	return c.stage == payStageDone
}

// buttonCount returns how many buttons the current stage shows.
func (c *PaymentCard) buttonCount() int {
	switch c.stage {
	case payStageMethod:
		return int(paymentMethodCount)
	case payStageConfirm:
		return 2 // confirm, cancel
	default:
		return 0
	}
}

// FocusNext moves the cursor forward, wrapping.
func (c *PaymentCard) FocusNext() {
	if n := c.buttonCount(); n > 0 {
		c.cursor = (c.cursor + 1) % n
	}
}

// FocusPrev moves the cursor back, wrapping.
func (c *PaymentCard) FocusPrev() {
	if n := c.buttonCount(); n > 0 {
		c.cursor = (c.cursor - 1 + n) % n
	}
}

// Select acts on the focused button and reports what happened. The
// controller reacts to PaymentConfirmed by starting the processing delay
// and to PaymentCancelled by re-prompting.
func (c *PaymentCard) Select() PaymentEvent {
	switch c.stage {
	case payStageMethod:
		c.method = PaymentMethod(c.cursor)
		c.stage = payStageConfirm
		c.cursor = 0
		return PaymentMethodChosen

	case payStageConfirm:
		if c.cursor == 0 {
			c.stage = payStageProcessing
			return PaymentConfirmed
		}
		return c.Cancel()

	default:
		return PaymentNone
	}
}

// Cancel aborts the current step and returns to the method chooser.
func (c *PaymentCard) Cancel() PaymentEvent {
	if c.stage == payStageProcessing || c.stage == payStageDone {
		return PaymentNone
	}
	c.stage = payStageMethod
	c.cursor = 0
	return PaymentCancelled
}

// Complete marks the payment as done. Called by the controller when the
// simulated processing delay elapses.
func (c *PaymentCard) Complete() {
	c.stage = payStageDone
}

// Render draws the payment card. Implements model.Fragment.
func (c *PaymentCard) Render(width int) string {
	inner := cardInnerWidth(width)

	rows := []string{
		c.theme.CardTitle.Render("Payment"),
		c.theme.CardLabel.Render("Plan") + c.theme.CardValue.Render(c.Plan.PlanName),
		c.theme.CardLabel.Render("Amount") + c.theme.Price.Render(FormatPrice(c.Plan.Price, c.Plan.Currency)),
		"",
	}

	switch c.stage {
	case payStageMethod:
		rows = append(rows, c.theme.CardValue.Render("Choose a payment method:"), "")
		var buttons []string
		for i := 0; i < int(paymentMethodCount); i++ {
			label := PaymentMethod(i).Label()
			if i == c.cursor {
				buttons = append(buttons, c.theme.CardButtonActive.Render(label))
			} else {
				buttons = append(buttons, c.theme.CardButton.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	case payStageConfirm:
		if c.method == PayNow {
			rows = append(rows, c.renderQRPlaceholder(), "")
			rows = append(rows, c.renderConfirmButtons("I Have Paid"))
		} else {
			rows = append(rows,
				c.theme.CardValue.Render(wordWrap(
					"Your saved card will be charged "+FormatPrice(c.Plan.Price, c.Plan.Currency)+".", inner)),
				"")
			rows = append(rows, c.renderConfirmButtons("Confirm Payment"))
		}
		rows = append(rows, "",
			styles.RenderWarning("Sandbox payment, nothing is charged."))

	case payStageProcessing:
		rows = append(rows, c.theme.TypingText.Render("Processing your payment..."))

	case payStageDone:
		rows = append(rows, styles.RenderSuccess("Paid with "+c.method.Label()))
	}

	return c.theme.Card.Width(minInt(width-4, inner+4)).
		Render(strings.Join(rows, "\n"))
}

func (c *PaymentCard) renderConfirmButtons(confirmLabel string) string {
	labels := []string{confirmLabel, "Cancel"}
	var buttons []string
	for i, label := range labels {
		if i == c.cursor {
			buttons = append(buttons, c.theme.CardButtonActive.Render(label))
		} else {
			buttons = append(buttons, c.theme.CardButton.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// renderQRPlaceholder draws a stand-in for the PayNow QR code. Terminals
// cannot render a scannable code, so this is a framed marker plus the
// payee reference.
func (c *PaymentCard) renderQRPlaceholder() string {
	lines := []string{
		"+--------------+",
		"| ## ###### ## |",
		"| #  PayNow  # |",
		"| ## ###### ## |",
		"+--------------+",
	}
	return c.theme.CardValue.Render(strings.Join(lines, "\n")) + "\n" +
		styles.RenderInfo("Scan with your banking app, then confirm below.")
}

// =============================================================================
// RECEIPT CARD
// =============================================================================

// ReceiptCard is the inert confirmation rendered after payment completes.
type ReceiptCard struct {
	Plan      api.Recommendation
	Method    PaymentMethod
	Reference string
	PaidAt    time.Time
	theme     *styles.Theme
}

// NewReceiptCard creates a receipt for a completed payment.
func NewReceiptCard(theme *styles.Theme, plan api.Recommendation, method PaymentMethod, reference string) *ReceiptCard {
	return &ReceiptCard{
		Plan:      plan,
		Method:    method,
		Reference: reference,
		PaidAt:    time.Now(),
		theme:     theme,
	}
}

// Render draws the receipt. Implements model.Fragment.
func (c *ReceiptCard) Render(width int) string {
	inner := cardInnerWidth(width)

	rows := []string{
		c.theme.CardTitle.Render("Payment Receipt"),
		"",
		c.theme.CardLabel.Render("Plan") + c.theme.CardValue.Render(c.Plan.PlanName),
		c.theme.CardLabel.Render("Amount") + c.theme.Price.Render(FormatPrice(c.Plan.Price, c.Plan.Currency)),
		c.theme.CardLabel.Render("Method") + c.theme.CardValue.Render(c.Method.Label()),
		c.theme.CardLabel.Render("Reference") + c.theme.CardValue.Render(c.Reference),
		c.theme.CardLabel.Render("Paid at") + c.theme.CardValue.Render(c.PaidAt.Format("2 Jan 2006 15:04")),
		"",
		styles.RenderSuccess("You're covered. Safe travels!"),
	}

	return c.theme.Card.Width(minInt(width-4, inner+4)).
		Render(strings.Join(rows, "\n"))
}
