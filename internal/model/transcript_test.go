// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestTranscriptIDsAreStrictlyIncreasing(t *testing.T) {
	tr := NewTranscript()

	tr.AddBotMessage("hello")
	tr.AddUserMessage("hi")
	tr.AddBotFragment("card below", nil)
	tr.AddBotMessage("bye")

	msgs := tr.Messages()
	if len(msgs) != 4 {
		t.Fatalf("Len = %d, want 4", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID <= msgs[i-1].ID {
			t.Fatalf("ID %d at index %d not greater than previous %d", msgs[i].ID, i, msgs[i-1].ID)
		}
	}
	if msgs[0].ID != 1 {
		t.Errorf("first ID = %d, want 1", msgs[0].ID)
	}
}

func TestTranscriptOrderPreserved(t *testing.T) {
	tr := NewTranscript()
	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		tr.AddBotMessage(text)
	}

	for i, msg := range tr.Messages() {
		if msg.Text != texts[i] {
			t.Errorf("messages[%d] = %q, want %q", i, msg.Text, texts[i])
		}
	}

	last, ok := tr.Last()
	if !ok || last.Text != "three" {
		t.Errorf("Last = %v/%v, want three", last.Text, ok)
	}
}

func TestTranscriptLastBotMessage(t *testing.T) {
	tr := NewTranscript()
	if _, ok := tr.LastBotMessage(); ok {
		t.Error("empty transcript claims a bot message")
	}

	tr.AddBotMessage("first bot")
	tr.AddUserMessage("user line")
	if got, ok := tr.LastBotMessage(); !ok || got.Text != "first bot" {
		t.Errorf("LastBotMessage = %q/%v, want first bot", got.Text, ok)
	}
}

func TestTranscriptReset(t *testing.T) {
	tr := NewTranscript()
	tr.AddBotMessage("before")
	tr.Reset()

	if !tr.IsEmpty() {
		t.Fatal("transcript not empty after Reset")
	}
	// A fresh session restarts IDs from 1.
	if got := tr.AddBotMessage("after"); got.ID != 1 {
		t.Errorf("post-reset ID = %d, want 1", got.ID)
	}
}

func TestMessagePreview(t *testing.T) {
	tests := []struct {
		text   string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"a much longer message", 10, "a much ..."},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		msg := Message{Text: tt.text}
		if got := msg.Preview(tt.maxLen); got != tt.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
		}
	}
}
