// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Haven conversation widget: a Bubble Tea component
// that walks a traveler from trip acquisition through plan selection and
// simulated payment into free-form Q&A.
//
// # Structure
//
// The Model owns everything that matters: the append-only transcript,
// the FlowState tag, the resolved TripRecord, the recommendation list,
// and the active cards. Cards (package components) keep only cursor and
// resolution state; every flow decision routes back through the Model's
// handlers in update.go.
//
// # Flow
//
// States move strictly through the purchase funnel: an entry chooser, one
// of three acquisition paths (identity lookup, manual form, document
// upload), trip review with a copy-on-write edit buffer, plan selection,
// payment, then free-form chat. Every backend failure surfaces as one
// chat-visible error and returns the flow to the idle state matching the
// user's entry path — the conversation is never stuck mid-call.
//
// # Pacing
//
// Bot messages are staged on a MessageQueue and drained by a single
// scheduler tick loop. Delays stagger delivery for readability only; the
// queue takes a Clock so tests drain it against virtual time.
package chat
