// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "testing"

var allStates = []FlowState{
	StateInitializing,
	StateAwaitingInitialAction,
	StateAwaitingIdentityInput,
	StateAwaitingManualInput,
	StateAwaitingDocumentUpload,
	StateAwaitingBookingConfirmation,
	StateReviewingTripDetails,
	StateAwaitingPlanSelection,
	StateConfirmingPayment,
	StateChatting,
}

func TestAllowsFreeTextOnlyWhileChatting(t *testing.T) {
	for _, state := range allStates {
		want := state == StateChatting
		if got := state.AllowsFreeText(); got != want {
			t.Errorf("%s.AllowsFreeText() = %v, want %v", state, got, want)
		}
	}
}

func TestTypedInputStates(t *testing.T) {
	typed := map[FlowState]bool{
		StateAwaitingIdentityInput:       true,
		StateAwaitingDocumentUpload:      true,
		StateAwaitingBookingConfirmation: true,
		StateChatting:                    true,
	}

	for _, state := range allStates {
		if got := state.acceptsTypedInput(); got != typed[state] {
			t.Errorf("%s.acceptsTypedInput() = %v, want %v", state, got, typed[state])
		}
	}
}

func TestStateNames(t *testing.T) {
	tests := []struct {
		state FlowState
		name  string
	}{
		{StateInitializing, "initializing"},
		{StateAwaitingInitialAction, "awaiting_initial_action"},
		{StateAwaitingBookingConfirmation, "awaiting_booking_confirmation"},
		{StateChatting, "chatting_freeform"},
		{FlowState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.name {
			t.Errorf("FlowState(%d).String() = %q, want %q", tt.state, got, tt.name)
		}
	}
}
