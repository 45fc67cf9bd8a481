// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

// =============================================================================
// FLOW STATE
// =============================================================================

// FlowState is the conversation's position in the purchase flow. Exactly
// one is active at a time and only the chat model mutates it.
type FlowState int

const (
	// StateInitializing covers the stored-session probe at widget open.
	StateInitializing FlowState = iota

	// StateAwaitingInitialAction shows the entry chooser.
	StateAwaitingInitialAction

	// StateAwaitingIdentityInput collects an NRIC for booking lookup.
	StateAwaitingIdentityInput

	// StateAwaitingManualInput collects trip details through the form.
	StateAwaitingManualInput

	// StateAwaitingDocumentUpload collects a booking PDF path.
	StateAwaitingDocumentUpload

	// StateAwaitingBookingConfirmation is the upload-or-manual prompt for
	// users whose flight details cannot be tracked.
	StateAwaitingBookingConfirmation

	// StateReviewingTripDetails shows the resolved trip for confirm/edit.
	StateReviewingTripDetails

	// StateAwaitingPlanSelection shows the ranked plan cards.
	StateAwaitingPlanSelection

	// StateConfirmingPayment covers summary, method choice, and the
	// simulated processing hold.
	StateConfirmingPayment

	// StateChatting is the free-form Q&A state after purchase (or via the
	// ask-a-question entry).
	StateChatting
)

// String returns the state's name for logs and tests.
func (s FlowState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAwaitingInitialAction:
		return "awaiting_initial_action"
	case StateAwaitingIdentityInput:
		return "awaiting_identity_input"
	case StateAwaitingManualInput:
		return "awaiting_manual_input"
	case StateAwaitingDocumentUpload:
		return "awaiting_document_upload"
	case StateAwaitingBookingConfirmation:
		return "awaiting_booking_confirmation"
	case StateReviewingTripDetails:
		return "reviewing_trip_details"
	case StateAwaitingPlanSelection:
		return "awaiting_plan_selection"
	case StateConfirmingPayment:
		return "confirming_payment"
	case StateChatting:
		return "chatting_freeform"
	default:
		return "unknown"
	}
}

// Label returns the step name shown in the status bar.
func (s FlowState) Label() string {
	switch s {
	case StateInitializing:
		return "Starting up"
	case StateAwaitingInitialAction:
		return "Getting started"
	case StateAwaitingIdentityInput:
		return "Identity lookup"
	case StateAwaitingManualInput:
		return "Trip details"
	case StateAwaitingDocumentUpload:
		return "Booking upload"
	case StateAwaitingBookingConfirmation:
		return "Booking confirmation"
	case StateReviewingTripDetails:
		return "Reviewing your trip"
	case StateAwaitingPlanSelection:
		return "Choosing a plan"
	case StateConfirmingPayment:
		return "Payment"
	case StateChatting:
		return "Chat"
	default:
		return "Unknown"
	}
}

// AllowsFreeText reports whether free-form questions are accepted. Only
// the post-purchase chat state forwards typed text to the Q&A endpoint;
// every other state either blocks typing or treats it as structured input
// (an NRIC, a file path).
func (s FlowState) AllowsFreeText() bool {
	return s == StateChatting
}

// acceptsTypedInput reports whether the input row is active at all in
// this state. Structured-entry states reuse the row with a dedicated
// placeholder and validation.
func (s FlowState) acceptsTypedInput() bool {
	switch s {
	case StateAwaitingIdentityInput, StateAwaitingDocumentUpload,
		StateAwaitingBookingConfirmation, StateChatting:
		return true
	default:
		return false
	}
}

// =============================================================================
// ENTRY PATH
// =============================================================================

// EntryPath records how the current acquisition attempt began, so a
// failure can return the flow to the idle state that fits the user:
// tracking-consented users go back to the chooser, tracking-disabled
// users go back to the upload-or-manual prompt.
type EntryPath int

const (
	EntryDefault EntryPath = iota
	EntryUploadFallback
)
