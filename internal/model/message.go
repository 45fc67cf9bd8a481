// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import "time"

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Haven"
	default:
		return string(s)
	}
}

// =============================================================================
// FRAGMENT TYPE
// =============================================================================

// Fragment is an opaque renderable attached to a message in place of (or in
// addition to) plain text. Cards implement this so the transcript never
// depends on any particular UI package.
type Fragment interface {
	// Render draws the fragment at the given width.
	Render(width int) string
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the chat transcript.
//
// IDs are assigned by the owning Transcript and are strictly increasing for
// the life of one widget session. Messages are never mutated after append.
type Message struct {
	ID        int       `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	// Fragment is an optional UI card rendered beneath the text.
	Fragment Fragment `json:"-"`
}

// HasText returns true if the message carries visible text.
func (m Message) HasText() bool {
	return m.Text != ""
}

// Preview returns a truncated preview of the message text.
// Rune-based so multi-byte content truncates cleanly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
