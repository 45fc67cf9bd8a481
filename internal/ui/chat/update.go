// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/components"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// UPDATE DISPATCH
// =============================================================================

// Update handles one Bubble Tea message and returns the commands it
// produced. The shell owns the program loop; the widget mutates itself
// in place.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case QueueTickMsg:
		return m.drainQueue()

	case TrackingStatusMsg:
		return m.handleTrackingStatus(msg)

	case ActivityMsg:
		return m.handleActivity(msg)

	case FlightSummaryMsg:
		return m.handleFlightSummary(msg)

	case TripResolvedMsg:
		return m.handleTripResolved(msg)

	case TripErrorMsg:
		return m.handleTripError(msg)

	case RecommendationsMsg:
		return m.handleRecommendations(msg)

	case RecommendationsErrorMsg:
		return m.handleRecommendationsError(msg)

	case AnswerMsg:
		return m.handleAnswer(msg)

	case AnswerErrorMsg:
		return m.handleAnswerError(msg)

	case PaymentProcessedMsg:
		return m.handlePaymentProcessed(msg)

	default:
		// Spinner frames and other component traffic.
		return m.typing.Update(msg)
	}
}

// =============================================================================
// KEY ROUTING
// =============================================================================

// handleKey routes a key press to the form, the active card, or the
// input row, depending on the flow state.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Viewport scrolling works everywhere.
	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	if card := m.activeCard(); card != nil {
		if cmd, handled := m.handleCardKey(card, msg); handled {
			return cmd
		}
	}

	if m.input.Enabled() {
		if msg.String() == "enter" {
			return m.submitTypedInput()
		}
		return m.input.Update(msg)
	}

	return nil
}

// cardNavigator is the shared cursor surface of every interactive card.
type cardNavigator interface {
	FocusNext()
	FocusPrev()
}

// activeCard returns the card that currently owns navigation keys.
func (m *Model) activeCard() cardNavigator {
	switch m.state {
	case StateAwaitingInitialAction:
		if m.actionCard != nil && !m.actionCard.Resolved() {
			return m.actionCard
		}
	case StateReviewingTripDetails:
		if m.tripCard != nil && !m.tripCard.Resolved() {
			return m.tripCard
		}
	case StateAwaitingPlanSelection:
		if m.planList != nil && !m.planList.Resolved() {
			return m.planList
		}
	case StateConfirmingPayment:
		if m.paymentCard != nil && !m.paymentCard.Done() && !m.paymentCard.Processing() {
			return m.paymentCard
		}
		if m.summaryCard != nil && !m.summaryCard.Resolved() {
			return m.summaryCard
		}
	}
	return nil
}

// handleCardKey applies navigation and selection keys to the active card.
func (m *Model) handleCardKey(card cardNavigator, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "right", "down", "l":
		card.FocusNext()
		m.refreshViewport()
		return nil, true

	case "shift+tab", "left", "up", "h":
		card.FocusPrev()
		m.refreshViewport()
		return nil, true

	case "enter", " ":
		cmd := m.selectActiveCard(card)
		m.refreshViewport()
		return cmd, true

	case "esc":
		if payment, ok := card.(*components.PaymentCard); ok {
			if payment.Cancel() == components.PaymentCancelled {
				m.refreshViewport()
				return m.stageText("No rush. Choose a payment method when you're ready."), true
			}
		}
		return nil, true
	}
	return nil, false
}

// selectActiveCard resolves the focused button on the active card and
// drives the flow transition it implies.
func (m *Model) selectActiveCard(card cardNavigator) tea.Cmd {
	switch card := card.(type) {
	case *components.ActionCard:
		return m.handleActionChoice(card.Select())

	case *components.TripCard:
		return m.handleTripChoice(card.Select())

	case *components.PlanListCard:
		plan := card.Select()
		return m.handlePlanSelected(plan)

	case *components.PlanSummaryCard:
		return m.handleSummaryChoice(card.Select())

	case *components.PaymentCard:
		return m.handlePaymentEvent(card.Select())
	}
	return nil
}

// =============================================================================
// CARD CHOICE HANDLERS
// =============================================================================

func (m *Model) handleActionChoice(action components.Action) tea.Cmd {
	switch action {
	case components.ActionIdentityLookup:
		m.entry = EntryDefault
		cmd := m.stageText("Sure — let me look up your booking. What's your NRIC?")
		return tea.Batch(cmd, m.setState(StateAwaitingIdentityInput))

	case components.ActionManualEntry:
		m.entry = EntryDefault
		m.form = NewTripForm(m.theme)
		cmd := m.stageText("No problem. Fill in your trip below.")
		return tea.Batch(cmd, m.setState(StateAwaitingManualInput))

	case components.ActionUploadDocument:
		m.entry = EntryDefault
		cmd := m.stageText("Send me your booking confirmation PDF — just type the file path.")
		return tea.Batch(cmd, m.setState(StateAwaitingDocumentUpload))

	case components.ActionAskQuestion:
		cmd := m.stageText("Sure — ask me anything about travel insurance.")
		return tea.Batch(cmd, m.setState(StateChatting))
	}
	return nil
}

func (m *Model) handleTripChoice(choice components.TripChoice) tea.Cmd {
	switch choice {
	case components.TripConfirm:
		m.statusBar.SetStatus(components.StatusWaiting)
		return tea.Batch(
			m.startTyping(styles.DotsSpinner, "Haven is typing"),
			FetchRecommendationsCmd(m.client, *m.trip),
		)

	case components.TripEdit:
		m.form = NewEditForm(m.theme, *m.trip)
		m.refreshViewport()
		return nil
	}
	return nil
}

func (m *Model) handlePlanSelected(plan api.Recommendation) tea.Cmd {
	m.selectedPlan = &plan
	m.summaryCard = components.NewPlanSummaryCard(m.theme, plan)

	cmd := m.stageFragment("Great choice! Here's a quick recap.", m.summaryCard)
	return tea.Batch(cmd, m.setState(StateConfirmingPayment))
}

func (m *Model) handleSummaryChoice(choice components.SummaryChoice) tea.Cmd {
	switch choice {
	case components.SummaryProceed:
		m.paymentCard = components.NewPaymentCard(m.theme, *m.selectedPlan)
		return m.stageFragment("", m.paymentCard)

	case components.SummaryChangePlan:
		m.planList.Reopen()
		m.summaryCard = nil
		m.selectedPlan = nil
		cmd := m.stageText("No problem — pick another plan.")
		return tea.Batch(cmd, m.setState(StateAwaitingPlanSelection))
	}
	return nil
}

func (m *Model) handlePaymentEvent(event components.PaymentEvent) tea.Cmd {
	switch event {
	case components.PaymentConfirmed:
		m.statusBar.SetStatus(components.StatusProcessing)
		return tea.Batch(
			m.startTyping(styles.PulseSpinner, "Processing your payment"),
			ProcessPaymentCmd(m.paymentHold),
		)

	case components.PaymentCancelled:
		return m.stageText("No rush. Choose a payment method when you're ready.")
	}
	return nil
}

// =============================================================================
// FORM HANDLING
// =============================================================================

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	action, cmd := m.form.HandleKey(msg)

	switch action {
	case FormSubmitted:
		if m.form.Editing() {
			return tea.Batch(cmd, m.commitEdit())
		}
		return tea.Batch(cmd, m.submitManualEntry())

	case FormCancelled:
		if m.form.Editing() {
			m.form = nil
			m.tripCard.Reopen()
			m.refreshViewport()
			return cmd
		}
		m.form = nil
		return tea.Batch(cmd, m.returnToIdle(m.entry))
	}
	return cmd
}

// submitManualEntry dispatches the validated form as a manual submission.
func (m *Model) submitManualEntry() tea.Cmd {
	details := m.form.Details()
	m.form = nil

	m.transcript.AddUserMessage("Here are my trip details.")
	m.refreshViewport()
	m.statusBar.SetStatus(components.StatusWaiting)
	m.input.Disable("")

	return tea.Batch(
		m.startTyping(styles.LineSpinner, "Checking your trip details"),
		SubmitTripCmd(m.client, api.ManualInput(details), m.entry),
	)
}

// commitEdit replaces the trip record wholesale with the edit buffer and
// re-runs review on the updated trip.
func (m *Model) commitEdit() tea.Cmd {
	updated := m.form.Commit()
	m.form = nil
	m.trip = &updated

	m.applyDestinationTheme(updated.Destination)
	m.tripCard = components.NewTripCard(m.theme, updated)
	return m.stageFragment("Updated! Here's your trip again.", m.tripCard)
}

// =============================================================================
// TYPED INPUT
// =============================================================================

// submitTypedInput handles enter on the input row: structured entry in
// the collection states, free-form questions while chatting.
func (m *Model) submitTypedInput() tea.Cmd {
	value := m.input.Value()
	if value == "" {
		return nil
	}

	switch m.state {
	case StateAwaitingIdentityInput:
		if !validNRIC(value) {
			return m.stageText("That doesn't look like an NRIC. It should be a letter, 7 digits, and a letter, like S1234567D.")
		}
		m.input.Reset()
		m.transcript.AddUserMessage(maskNRIC(value))
		m.refreshViewport()
		m.statusBar.SetStatus(components.StatusWaiting)
		m.input.Disable("")
		return tea.Batch(
			m.startTyping(styles.LineSpinner, "Looking up your booking"),
			SubmitTripCmd(m.client, api.NRICInput(strings.ToUpper(strings.TrimSpace(value))), m.entry),
		)

	case StateAwaitingDocumentUpload:
		m.input.Reset()
		return m.dispatchUpload(value, m.entry)

	case StateAwaitingBookingConfirmation:
		m.input.Reset()
		if strings.EqualFold(value, "manual") {
			m.entry = EntryUploadFallback
			m.form = NewTripForm(m.theme)
			cmd := m.stageText("Fill in your trip below.")
			return tea.Batch(cmd, m.setState(StateAwaitingManualInput))
		}
		return m.dispatchUpload(value, EntryUploadFallback)

	case StateChatting:
		return m.submitQuestion(value)
	}
	return nil
}

// dispatchUpload submits a booking document path.
func (m *Model) dispatchUpload(path string, entry EntryPath) tea.Cmd {
	m.transcript.AddUserMessage("Uploaded " + filepath.Base(path))
	m.refreshViewport()
	m.statusBar.SetStatus(components.StatusWaiting)

	return tea.Batch(
		m.startTyping(styles.LineSpinner, "Reading your booking"),
		ReadBookingPDFCmd(m.client, path, entry),
	)
}

// submitQuestion forwards a free-form question, throttled client-side.
func (m *Model) submitQuestion(question string) tea.Cmd {
	if !m.askLimiter.Allow() {
		return m.stageText("You're sending questions a little fast — give me a second to catch up.")
	}

	m.input.Reset()
	m.transcript.AddUserMessage(question)
	m.refreshViewport()
	m.statusBar.SetStatus(components.StatusWaiting)

	return tea.Batch(
		m.startTyping(styles.DotsSpinner, "Haven is typing"),
		AskQuestionCmd(m.client, question, m.questionContext()),
	)
}

// =============================================================================
// ASYNC RESULT HANDLERS
// =============================================================================

func (m *Model) handleTrackingStatus(msg TrackingStatusMsg) tea.Cmd {
	if msg.Err != nil {
		return m.initFallback(msg.Err)
	}

	greeting := "Welcome back"
	if m.identity.Name != "" {
		greeting += ", " + m.identity.Name
	}

	if msg.Allowed {
		cmd := m.stageText(greeting + "!")
		return tea.Batch(cmd,
			RecentActivityCmd(m.client, m.identity.UserID),
			FlightSummaryCmd(m.client, m.identity.NRIC),
		)
	}

	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	m.entry = EntryUploadFallback
	cmd := m.stageText(greeting + "! I can't access your flight details, but you can send me your booking confirmation — type the file path, or type 'manual' to enter the details yourself.")
	return tea.Batch(cmd, m.setState(StateAwaitingBookingConfirmation))
}

func (m *Model) handleActivity(msg ActivityMsg) tea.Cmd {
	if msg.Err != nil {
		return m.initFallback(msg.Err)
	}
	if m.initFailed || msg.Message == "" {
		return nil
	}
	return m.stageText(msg.Message)
}

func (m *Model) handleFlightSummary(msg FlightSummaryMsg) tea.Cmd {
	if msg.Err != nil {
		return m.initFallback(msg.Err)
	}
	if m.initFailed {
		return nil
	}

	summary := msg.Summary
	record := api.TripRecord{
		UserID:        m.identity.UserID,
		NRIC:          summary.NRIC,
		Origin:        summary.Origin,
		Destination:   summary.Destination,
		DepartureDate: summary.DepartureDate,
		ReturnDate:    summary.ReturnDate,
		NumTravelers:  summary.NumTravelers,
		TripType:      summary.TripType,
		FlexiFlight:   summary.FlexiFlight,
	}
	m.trip = &record

	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	m.applyDestinationTheme(record.Destination)
	m.tripCard = components.NewTripCard(m.theme, record)

	cmd := m.stageFragment("I found your upcoming trip. Want to get it covered?", m.tripCard)
	return tea.Batch(cmd, m.setState(StateReviewingTripDetails))
}

// initFallback handles any failed probe during initialization: one
// visible error, then the entry chooser. Later probe results are
// ignored once the fallback has run.
func (m *Model) initFallback(err error) tea.Cmd {
	if m.initFailed {
		return nil
	}
	m.initFailed = true

	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	banner := components.NewErrorBannerFromErr(m.theme, err)
	cmd := m.stageFragment("", banner)
	return tea.Batch(cmd, m.returnToIdle(EntryDefault))
}

func (m *Model) handleTripResolved(msg TripResolvedMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)

	m.trip = msg.Record
	m.entry = msg.Entry
	m.applyDestinationTheme(msg.Record.Destination)
	m.tripCard = components.NewTripCard(m.theme, *msg.Record)

	cmd := m.stageFragment("Here's what I found. Does everything look right?", m.tripCard)
	return tea.Batch(cmd, m.setState(StateReviewingTripDetails))
}

func (m *Model) handleTripError(msg TripErrorMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)

	banner := components.NewErrorBannerFromErr(m.theme, msg.Err)
	cmd := m.stageFragment("", banner)

	if msg.Local {
		// Unreadable upload: stay put, the user can try another file.
		return cmd
	}
	return tea.Batch(cmd, m.returnToIdle(msg.Entry))
}

func (m *Model) handleRecommendations(msg RecommendationsMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)

	narrative := m.renderMarkdown(msg.Response.Message)

	// The backend answers with an empty recommendation list when no plan
	// fits the trip. Relay its message and offer the chooser again rather
	// than an empty selection.
	if len(msg.Response.Recommendations) == 0 {
		cmd := m.stageText(narrative)
		return tea.Batch(cmd, m.returnToIdle(EntryDefault))
	}

	m.recommendations = msg.Response.Recommendations
	m.planList = components.NewPlanListCard(m.theme, m.recommendations)

	cmd := m.stageFragment(narrative, m.planList)
	return tea.Batch(cmd, m.setState(StateAwaitingPlanSelection))
}

func (m *Model) handleRecommendationsError(msg RecommendationsErrorMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)

	banner := components.NewErrorBannerFromErr(m.theme, msg.Err)
	cmd := m.stageFragment("", banner)
	return tea.Batch(cmd, m.returnToIdle(EntryDefault))
}

func (m *Model) handleAnswer(msg AnswerMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	return m.stageText(m.renderMarkdown(msg.Answer))
}

func (m *Model) handleAnswerError(msg AnswerErrorMsg) tea.Cmd {
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	// Degrade to an apology, no state change.
	return m.stageText("Sorry, I couldn't get an answer just now. Mind asking again?")
}

func (m *Model) handlePaymentProcessed(msg PaymentProcessedMsg) tea.Cmd {
	m.paymentCard.Complete()
	m.typing.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	m.refreshViewport()

	receipt := components.NewReceiptCard(m.theme, *m.selectedPlan, m.paymentCard.Method(), msg.Reference)

	confirm := m.stageFragment(
		"Payment confirmed — you're covered with "+m.selectedPlan.PlanName+"!", receipt)
	followUp := m.stageText("Any questions about your coverage? Just ask.")
	return tea.Batch(confirm, followUp, m.setState(StateChatting))
}
