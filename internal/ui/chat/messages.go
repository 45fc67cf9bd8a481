// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
//
// This file defines the Bubble Tea message types used by the widget.
// Messages fall into these categories:
//   - Trip acquisition: identity/upload/manual submissions resolving (or
//     failing to resolve) into a TripRecord
//   - Recommendations and Q&A: plan fetches and free-form answers
//   - Session probe: tracking consent and recent activity at widget open
//   - Payment: completion of the simulated processing hold
//   - Pacing: scheduler ticks draining the staged message queue
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"time"

	"github.com/havenlabs/haven-tui/internal/api"
)

// =============================================================================
// TRIP ACQUISITION MESSAGES
// =============================================================================

// TripResolvedMsg delivers the TripRecord a submission normalized into.
type TripResolvedMsg struct {
	Record *api.TripRecord
	Entry  EntryPath
}

// TripErrorMsg signals that a trip submission failed. Local marks
// failures that happened before dispatch (an unreadable upload); the
// flow does not advance for those.
type TripErrorMsg struct {
	Entry EntryPath
	Err   error
	Local bool
}

// =============================================================================
// RECOMMENDATION AND Q&A MESSAGES
// =============================================================================

// RecommendationsMsg delivers the ranked plans for a confirmed trip.
type RecommendationsMsg struct {
	Response *api.RecommendResponse
}

// RecommendationsErrorMsg signals that the plan fetch failed.
type RecommendationsErrorMsg struct {
	Err error
}

// AnswerMsg delivers the backend's answer to a free-form question.
type AnswerMsg struct {
	Answer string
}

// AnswerErrorMsg signals that a free-form question failed.
type AnswerErrorMsg struct {
	Err error
}

// =============================================================================
// SESSION PROBE MESSAGES
// =============================================================================

// TrackingStatusMsg reports whether the stored identity allows flight
// tracking. Err is set when the probe itself failed.
type TrackingStatusMsg struct {
	Allowed bool
	Err     error
}

// ActivityMsg delivers the proactive recent-activity greeting.
type ActivityMsg struct {
	Message string
	Err     error
}

// FlightSummaryMsg delivers the stored booking found for a tracked user
// at widget open.
type FlightSummaryMsg struct {
	Summary *api.FlightSummary
	Err     error
}

// =============================================================================
// PAYMENT MESSAGES
// =============================================================================

// PaymentProcessedMsg signals the end of the simulated processing hold.
type PaymentProcessedMsg struct {
	Reference string
}

// =============================================================================
// PACING MESSAGES
// =============================================================================

// QueueTickMsg is the scheduler tick that drains due staged messages.
type QueueTickMsg struct {
	At time.Time
}
