// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"
	"time"
)

// manualClock lets queue tests move time by hand instead of sleeping.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestQueuePopsInPushOrder(t *testing.T) {
	clock := newManualClock()
	q := NewMessageQueue(clock)

	q.PushText(100*time.Millisecond, "first")
	q.PushText(100*time.Millisecond, "second")
	q.PushText(100*time.Millisecond, "third")

	if got := q.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}

	// Nothing is due yet.
	if due := q.PopDue(); len(due) != 0 {
		t.Fatalf("PopDue before the delay returned %d messages", len(due))
	}

	clock.Advance(100 * time.Millisecond)
	due := q.PopDue()
	if len(due) != 1 || due[0].Text != "first" {
		t.Fatalf("first pop = %+v, want just %q", due, "first")
	}

	clock.Advance(100 * time.Millisecond)
	due = q.PopDue()
	if len(due) != 1 || due[0].Text != "second" {
		t.Fatalf("second pop = %+v, want just %q", due, "second")
	}
}

func TestQueueLateTickReleasesBacklog(t *testing.T) {
	clock := newManualClock()
	q := NewMessageQueue(clock)

	q.PushText(100*time.Millisecond, "one")
	q.PushText(100*time.Millisecond, "two")
	q.PushText(100*time.Millisecond, "three")

	// A tick that arrives long after several due times releases
	// everything overdue at once, still in push order.
	clock.Advance(time.Second)
	due := q.PopDue()

	if len(due) != 3 {
		t.Fatalf("late PopDue returned %d messages, want 3", len(due))
	}
	for i, want := range []string{"one", "two", "three"} {
		if due[i].Text != want {
			t.Errorf("due[%d] = %q, want %q", i, due[i].Text, want)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty after draining the backlog")
	}
}

func TestQueueZeroDelayIsImmediatelyDue(t *testing.T) {
	clock := newManualClock()
	q := NewMessageQueue(clock)

	q.PushText(0, "now")
	q.PushText(0, "also now")

	if got := q.NextDelay(); got != 0 {
		t.Errorf("NextDelay = %v, want 0", got)
	}
	if due := q.PopDue(); len(due) != 2 {
		t.Errorf("PopDue = %d messages, want 2", len(due))
	}
}

func TestQueueNextDelay(t *testing.T) {
	clock := newManualClock()
	q := NewMessageQueue(clock)

	if got := q.NextDelay(); got != 0 {
		t.Errorf("empty queue NextDelay = %v, want 0", got)
	}

	q.PushText(300*time.Millisecond, "later")
	if got := q.NextDelay(); got != 300*time.Millisecond {
		t.Errorf("NextDelay = %v, want 300ms", got)
	}

	clock.Advance(200 * time.Millisecond)
	if got := q.NextDelay(); got != 100*time.Millisecond {
		t.Errorf("NextDelay after advance = %v, want 100ms", got)
	}

	clock.Advance(500 * time.Millisecond)
	if got := q.NextDelay(); got != 0 {
		t.Errorf("overdue NextDelay = %v, want 0", got)
	}
}

func TestQueueReanchorsAfterIdle(t *testing.T) {
	clock := newManualClock()
	q := NewMessageQueue(clock)

	q.PushText(100*time.Millisecond, "first batch")
	clock.Advance(100 * time.Millisecond)
	q.PopDue()

	// A long quiet gap must not make the next push instantly due.
	clock.Advance(time.Hour)
	q.PushText(100*time.Millisecond, "second batch")

	if due := q.PopDue(); len(due) != 0 {
		t.Fatalf("fresh push was due immediately after idle gap")
	}
	clock.Advance(100 * time.Millisecond)
	if due := q.PopDue(); len(due) != 1 {
		t.Fatal("push after idle gap never came due")
	}
}
