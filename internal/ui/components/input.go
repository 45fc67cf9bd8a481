// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// INPUT AREA COMPONENT
// =============================================================================

// InputArea is the free-text entry row at the bottom of the widget. It is
// enabled only while the conversation accepts typed input; during card
// driven steps it renders a dimmed hint instead.
type InputArea struct {
	input    textinput.Model
	enabled  bool
	hint     string // shown while disabled
	width    int
	maxChars int
	theme    *styles.Theme
}

// NewInputArea creates a disabled input area with default limits.
func NewInputArea(theme *styles.Theme) *InputArea {
	ti := textinput.New()
	ti.Placeholder = "Ask Haven anything about your trip..."
	ti.CharLimit = 500
	ti.Width = 70
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = theme.InputPrompt

	return &InputArea{
		input:    ti,
		hint:     "Use the buttons above to continue",
		width:    80,
		maxChars: 500,
		theme:    theme,
	}
}

// Enable activates typed input and focuses the field.
func (i *InputArea) Enable() tea.Cmd {
	i.enabled = true
	return i.input.Focus()
}

// Disable blocks typed input and shows the given hint (empty keeps the
// previous hint).
func (i *InputArea) Disable(hint string) {
	i.enabled = false
	if hint != "" {
		i.hint = hint
	}
	i.input.Blur()
}

// Enabled reports whether typed input is accepted.
func (i *InputArea) Enabled() bool {
	return i.enabled
}

// SetPlaceholder sets the placeholder shown while enabled and empty.
func (i *InputArea) SetPlaceholder(placeholder string) {
	i.input.Placeholder = placeholder
}

// SetEchoPassword switches the field to masked entry.
func (i *InputArea) SetEchoPassword(masked bool) {
	if masked {
		i.input.EchoMode = textinput.EchoPassword
		i.input.EchoCharacter = '*'
	} else {
		i.input.EchoMode = textinput.EchoNormal
	}
}

// SetWidth sets the input area width.
func (i *InputArea) SetWidth(width int) {
	i.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.input.Width = inputWidth
}

// Value returns the trimmed current input value.
func (i *InputArea) Value() string {
	return strings.TrimSpace(i.input.Value())
}

// Reset clears the input.
func (i *InputArea) Reset() {
	i.input.Reset()
}

// Update forwards key events to the field while enabled.
func (i *InputArea) Update(msg tea.Msg) tea.Cmd {
	if !i.enabled {
		return nil
	}
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return cmd
}

// View renders the input row.
func (i *InputArea) View() string {
	if !i.enabled {
		return i.theme.InputContainer.Width(i.width - 2).
			Render(i.theme.InputDisabled.Render(i.hint))
	}
	return i.theme.InputContainer.Width(i.width - 2).Render(i.input.View())
}
