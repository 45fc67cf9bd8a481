// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator is the "Haven is typing" spinner shown while a backend
// call is in flight or staged messages are still draining.
type TypingIndicator struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	isActive  bool
	showTimer bool
	theme     *styles.Theme
}

// NewTypingIndicator creates an indicator with the default dots animation.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.DotsSpinner.Frames,
		FPS:    styles.DotsSpinner.Duration(),
	}
	s.Style = theme.Spinner

	return TypingIndicator{
		spinner: s,
		message: "Haven is typing",
		theme:   theme,
	}
}

// SetMessage overrides the indicator label.
func (t *TypingIndicator) SetMessage(message string) {
	t.message = message
}

// SetAnimation swaps the spinner frames, e.g. the line spinner for
// lookups or the pulse spinner while a payment settles.
func (t *TypingIndicator) SetAnimation(cfg styles.SpinnerConfig) {
	t.spinner.Spinner = spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Duration(),
	}
}

// Start activates the indicator and resets its timer.
func (t *TypingIndicator) Start() tea.Cmd {
	t.isActive = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// Active returns whether the indicator is running.
func (t *TypingIndicator) Active() bool {
	return t.isActive
}

// ShowTimer toggles the elapsed-seconds suffix for long waits.
func (t *TypingIndicator) ShowTimer(show bool) {
	t.showTimer = show
}

// Update advances the spinner animation.
func (t *TypingIndicator) Update(msg tea.Msg) tea.Cmd {
	if !t.isActive {
		return nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// View renders the indicator, or nothing when inactive.
func (t *TypingIndicator) View() string {
	if !t.isActive {
		return ""
	}

	line := t.spinner.View() + " " + t.theme.TypingText.Render(t.message)

	if t.showTimer {
		elapsed := int(time.Since(t.startTime).Seconds())
		if elapsed >= 3 {
			line += t.theme.Timestamp.Render(" (" + formatSeconds(elapsed) + ")")
		}
	}

	return line
}

// formatSeconds renders an elapsed duration as "12s" or "1m05s".
func formatSeconds(secs int) string {
	if secs < 60 {
		return itoa(secs) + "s"
	}
	mins := secs / 60
	rem := secs % 60
	out := itoa(mins) + "m"
	if rem < 10 {
		out += "0"
	}
	return out + itoa(rem) + "s"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
