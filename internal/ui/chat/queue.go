// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"time"

	"github.com/havenlabs/haven-tui/internal/model"
)

// =============================================================================
// CLOCK
// =============================================================================

// Clock supplies the current time. The queue takes it as a dependency so
// tests drain staged messages against a manual clock instead of sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used outside tests.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// =============================================================================
// STAGED MESSAGE QUEUE
// =============================================================================

// StagedMessage is one pending bot message with its pacing delay. The
// delay staggers delivery for readability only; it has no correctness
// role.
type StagedMessage struct {
	Text     string
	Fragment model.Fragment
	Delay    time.Duration
}

// MessageQueue holds bot messages awaiting paced delivery. A single
// scheduler (the chat model's tick loop) drains it; messages leave in
// the order they were pushed, each after its own delay measured from the
// previous delivery.
type MessageQueue struct {
	clock   Clock
	pending []StagedMessage
	dueAt   time.Time
}

// NewMessageQueue creates an empty queue driven by the given clock.
func NewMessageQueue(clock Clock) *MessageQueue {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MessageQueue{clock: clock}
}

// Push stages a message. If the queue was empty its due time starts now.
func (q *MessageQueue) Push(msg StagedMessage) {
	if len(q.pending) == 0 {
		q.dueAt = q.clock.Now().Add(msg.Delay)
	}
	q.pending = append(q.pending, msg)
}

// PushText stages a plain text message.
func (q *MessageQueue) PushText(delay time.Duration, text string) {
	q.Push(StagedMessage{Text: text, Delay: delay})
}

// PushFragment stages a message carrying a card.
func (q *MessageQueue) PushFragment(delay time.Duration, text string, frag model.Fragment) {
	q.Push(StagedMessage{Text: text, Fragment: frag, Delay: delay})
}

// Empty reports whether nothing is pending.
func (q *MessageQueue) Empty() bool {
	return len(q.pending) == 0
}

// Len returns the number of pending messages.
func (q *MessageQueue) Len() int {
	return len(q.pending)
}

// PopDue removes and returns every message whose due time has passed,
// in push order. Each pop re-anchors the next message's due time, so a
// late tick can release several messages at once.
func (q *MessageQueue) PopDue() []StagedMessage {
	now := q.clock.Now()

	var due []StagedMessage
	for len(q.pending) > 0 && !now.Before(q.dueAt) {
		head := q.pending[0]
		q.pending = q.pending[1:]
		due = append(due, head)

		if len(q.pending) > 0 {
			q.dueAt = q.dueAt.Add(q.pending[0].Delay)
		}
	}
	return due
}

// NextDelay returns how long until the head message is due, or zero when
// it is already due or the queue is empty. The scheduler uses this to
// size its next tick.
func (q *MessageQueue) NextDelay() time.Duration {
	if len(q.pending) == 0 {
		return 0
	}
	delay := q.dueAt.Sub(q.clock.Now())
	if delay < 0 {
		return 0
	}
	return delay
}
