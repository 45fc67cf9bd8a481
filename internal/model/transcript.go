// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import "time"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered, append-only message history for one open
// widget session. Messages are never removed or reordered while the widget
// is open; Reset starts a fresh session when the widget is reopened.
type Transcript struct {
	messages []Message
	nextID   int
}

// NewTranscript creates an empty transcript. IDs start at 1.
func NewTranscript() *Transcript {
	return &Transcript{nextID: 1}
}

// =============================================================================
// APPEND OPERATIONS
// =============================================================================

// Append adds a message, assigning the next monotonic ID, and returns it.
func (t *Transcript) Append(sender Sender, text string, frag Fragment) Message {
	msg := Message{
		ID:        t.nextID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
		Fragment:  frag,
	}
	t.nextID++
	t.messages = append(t.messages, msg)
	return msg
}

// AddUserMessage appends a plain-text user message.
func (t *Transcript) AddUserMessage(text string) Message {
	return t.Append(SenderUser, text, nil)
}

// AddBotMessage appends a plain-text bot message.
func (t *Transcript) AddBotMessage(text string) Message {
	return t.Append(SenderBot, text, nil)
}

// AddBotFragment appends a bot message carrying a renderable card.
func (t *Transcript) AddBotFragment(text string, frag Fragment) Message {
	return t.Append(SenderBot, text, frag)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the message history in append order.
// Callers must not mutate the returned slice.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message and true, or a zero Message and
// false when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// LastBotMessage returns the most recent bot message, or false if none.
func (t *Transcript) LastBotMessage() (Message, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Sender == SenderBot {
			return t.messages[i], true
		}
	}
	return Message{}, false
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Reset discards the history and restarts the ID sequence. Called when the
// widget is closed and reopened; never while a session is in progress.
func (t *Transcript) Reset() {
	t.messages = nil
	t.nextID = 1
}
