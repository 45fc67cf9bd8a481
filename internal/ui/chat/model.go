// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"golang.org/x/time/rate"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/config"
	"github.com/havenlabs/haven-tui/internal/model"
	"github.com/havenlabs/haven-tui/internal/session"
	"github.com/havenlabs/haven-tui/internal/themes"
	"github.com/havenlabs/haven-tui/internal/ui/components"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// defaultPaymentHold is the simulated payment processing delay.
const defaultPaymentHold = 2 * time.Second

// nricPattern matches Singapore NRIC/FIN formats.
var nricPattern = regexp.MustCompile(`^[STFG]\d{7}[A-Z]$`)

// Model is the conversation controller: it owns the transcript, the flow
// state, the accumulated trip data, and every card the flow puts on
// screen. All mutation happens here; cards only hold cursor state.
type Model struct {
	// Flow
	state FlowState
	entry EntryPath

	// Collaborators
	client   *api.Client
	identity session.Identity
	theme    *styles.Theme

	// Transcript and pacing
	transcript *Transcript
	queue      *MessageQueue
	clock      Clock
	pacing     time.Duration
	ticking    bool

	// Trip data
	trip            *api.TripRecord
	recommendations []api.Recommendation
	selectedPlan    *api.Recommendation

	// Active cards
	actionCard  *components.ActionCard
	tripCard    *components.TripCard
	planList    *components.PlanListCard
	summaryCard *components.PlanSummaryCard
	paymentCard *components.PaymentCard
	form        *TripForm

	// Chrome
	viewport  viewport.Model
	header    *components.Header
	input     *components.InputArea
	statusBar *components.StatusBar
	typing    *components.TypingIndicator

	// Init probe bookkeeping
	initFailed bool

	// Compact layout: no header banner, tighter transcript
	compact bool

	// Free-form question throttle
	askLimiter *rate.Limiter

	// Simulated payment processing delay
	paymentHold time.Duration

	// Markdown rendering for narratives and answers
	markdown *glamour.TermRenderer

	width  int
	height int
}

// Transcript aliases the shared transcript container.
type Transcript = model.Transcript

// Option configures a Model at construction.
type Option func(*Model)

// WithClock injects a clock, letting tests drive pacing deterministically.
func WithClock(clock Clock) Option {
	return func(m *Model) {
		m.clock = clock
		m.queue = NewMessageQueue(clock)
	}
}

// WithIdentity seeds the stored session identity.
func WithIdentity(id session.Identity) Option {
	return func(m *Model) {
		m.identity = id
	}
}

// WithPaymentHold overrides the simulated processing delay.
func WithPaymentHold(hold time.Duration) Option {
	return func(m *Model) {
		m.paymentHold = hold
	}
}

// New creates the chat widget. The identity is zero when nobody is
// logged in; cfg tunes pacing.
func New(client *api.Client, cfg *config.Config, opts ...Option) *Model {
	theme := styles.NewTheme(themes.Default)

	pacing := time.Duration(0)
	compact := false
	if cfg != nil {
		if cfg.UI.PacingEnabled {
			pacing = time.Duration(cfg.UI.PacingDelayMs) * time.Millisecond
		}
		compact = cfg.UI.CompactMode
	}

	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		markdown = nil // fall back to raw text
	}

	m := &Model{
		state:       StateInitializing,
		client:      client,
		theme:       theme,
		transcript:  model.NewTranscript(),
		clock:       SystemClock{},
		pacing:      pacing,
		viewport:    viewport.New(80, 20),
		header:      components.NewHeader(theme),
		input:       components.NewInputArea(theme),
		statusBar:   components.NewStatusBar(theme),
		askLimiter:  rate.NewLimiter(rate.Every(2*time.Second), 3),
		markdown:    markdown,
		compact:     compact,
		paymentHold: defaultPaymentHold,
		width:       80,
		height:      24,
	}
	m.queue = NewMessageQueue(m.clock)
	typing := components.NewTypingIndicator(theme)
	m.typing = &typing

	for _, opt := range opts {
		opt(m)
	}

	// Each widget open is one session; its ID tags every backend request.
	sess := session.New(m.identity)
	client.SetSession(sess.ID())
	if !sess.Identity().IsZero() {
		m.header.SetUser(sess.Identity().Name)
	}
	return m
}

// State returns the current flow state.
func (m *Model) State() FlowState {
	return m.state
}

// FreeTextEnabled reports whether free-form questions are accepted.
func (m *Model) FreeTextEnabled() bool {
	return m.state.AllowsFreeText()
}

// Transcript exposes the message history for the view and for tests.
func (m *Model) Transcript() *Transcript {
	return m.transcript
}

// Trip returns the controller's current trip record, nil before one
// resolves.
func (m *Model) Trip() *api.TripRecord {
	return m.trip
}

// Theme returns the active style set.
func (m *Model) Theme() *styles.Theme {
	return m.theme
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// Init starts the widget: with a stored identity it probes tracking
// consent, otherwise it greets and shows the entry chooser.
func (m *Model) Init() tea.Cmd {
	if m.identity.IsZero() {
		greet := m.stageText("Hi! I'm Haven, your travel insurance assistant.")
		return tea.Batch(greet, m.returnToIdle(EntryDefault))
	}

	m.statusBar.SetStatus(components.StatusWaiting)
	return tea.Batch(
		m.startTyping(styles.LineSpinner, "Looking up your trip"),
		TrackingStatusCmd(m.client, m.identity.UserID),
	)
}

// startTyping runs the indicator with the animation and label for the
// work in flight: line for lookups, dots for composed replies, pulse
// while a payment settles.
func (m *Model) startTyping(anim styles.SpinnerConfig, label string) tea.Cmd {
	m.typing.SetAnimation(anim)
	m.typing.SetMessage(label)
	return m.typing.Start()
}

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// setState moves the flow and reconfigures the input row for the new
// state. Every transition is followed by a staged message or a render
// refresh at the call site.
func (m *Model) setState(s FlowState) tea.Cmd {
	m.state = s
	m.statusBar.SetStep(s.Label())

	switch s {
	case StateAwaitingIdentityInput:
		m.input.SetPlaceholder("Your NRIC, e.g. S1234567D")
		return m.input.Enable()
	case StateAwaitingDocumentUpload:
		m.input.SetPlaceholder("Path to your booking PDF")
		return m.input.Enable()
	case StateAwaitingBookingConfirmation:
		m.input.SetPlaceholder("Path to your booking PDF, or type 'manual'")
		return m.input.Enable()
	case StateChatting:
		m.input.SetPlaceholder("Ask Haven anything about your trip...")
		return m.input.Enable()
	default:
		m.input.Disable("Use the buttons above to continue")
		return nil
	}
}

// returnToIdle sends the flow back to the idle state that fits how the
// current attempt began: upload-fallback users get the upload-or-manual
// prompt, everyone else gets a fresh entry chooser.
func (m *Model) returnToIdle(entry EntryPath) tea.Cmd {
	switch entry {
	case EntryUploadFallback:
		cmd := m.stageText("You can send your booking confirmation again, or type 'manual' to enter the details yourself.")
		return tea.Batch(cmd, m.setState(StateAwaitingBookingConfirmation))
	default:
		m.actionCard = components.NewActionCard(m.theme)
		cmd := m.stageFragment("What would you like to do?", m.actionCard)
		return tea.Batch(cmd, m.setState(StateAwaitingInitialAction))
	}
}

// =============================================================================
// MESSAGE STAGING
// =============================================================================

// stageText queues a paced bot message.
func (m *Model) stageText(text string) tea.Cmd {
	m.queue.PushText(m.pacing, text)
	return m.ensureTicking()
}

// stageFragment queues a paced bot message carrying a card.
func (m *Model) stageFragment(text string, frag model.Fragment) tea.Cmd {
	m.queue.PushFragment(m.pacing, text, frag)
	return m.ensureTicking()
}

// ensureTicking schedules the next queue drain if one is not already
// pending. A single scheduler loop drains the queue, so staged messages
// always append in push order.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || m.queue.Empty() {
		return nil
	}
	m.ticking = true
	return QueueTickCmd(m.queue.NextDelay())
}

// drainQueue appends every due staged message to the transcript and
// reschedules when more remain.
func (m *Model) drainQueue() tea.Cmd {
	m.ticking = false
	for _, staged := range m.queue.PopDue() {
		m.transcript.AddBotFragment(staged.Text, staged.Fragment)
	}
	m.refreshViewport()
	return m.ensureTicking()
}

// =============================================================================
// THEME APPLICATION
// =============================================================================

// applyDestinationTheme restyles the widget for the trip's destination.
func (m *Model) applyDestinationTheme(destination string) {
	m.theme.Apply(themes.ForCountry(destination))
	m.header.SetDestination(destination)
}

// =============================================================================
// FREE-FORM CONTEXT
// =============================================================================

// questionContext summarizes the trip and selected plan for the Q&A
// endpoint. The backend takes this as a formatted string.
func (m *Model) questionContext() string {
	if m.trip == nil {
		return ""
	}

	ctx := fmt.Sprintf("User's trip: %s to %s, %d traveler(s), departing %s.",
		m.trip.Origin, m.trip.Destination, m.trip.NumTravelers, m.trip.DepartureDate)
	if m.selectedPlan != nil {
		ctx += " Selected insurance: " + m.selectedPlan.PlanName
	}
	return ctx
}

// renderMarkdown renders backend markdown for the terminal, falling back
// to the raw text when rendering fails.
func (m *Model) renderMarkdown(text string) string {
	if m.markdown == nil {
		return text
	}
	rendered, err := m.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}

// =============================================================================
// VALIDATION
// =============================================================================

// validNRIC checks the shape of an identity token before dispatch, so an
// obviously bad one never costs a network round-trip.
func validNRIC(value string) bool {
	return nricPattern.MatchString(strings.ToUpper(strings.TrimSpace(value)))
}

// maskNRIC hides the middle digits for transcript display.
func maskNRIC(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != 9 {
		return value
	}
	return value[:2] + "*****" + value[7:]
}
