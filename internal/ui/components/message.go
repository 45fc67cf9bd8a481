// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/model"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one transcript entry: the sender line, the text
// bubble, and any card fragment attached beneath it.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for a transcript message.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the available render width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch b.Message.Sender {
	case model.SenderUser:
		return b.renderUserBubble()
	default:
		return b.renderBotBubble()
	}
}

// =============================================================================
// USER BUBBLE - right-aligned
// =============================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)

	header := b.theme.Timestamp.Render(b.Message.Sender.DisplayName())
	if b.ShowTimestamp {
		header += " " + b.theme.Timestamp.Render(b.Message.Timestamp.Format("15:04"))
	}

	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	margin := lipgloss.NewStyle().MarginLeft(leftMargin)

	return margin.Render(header) + "\n" + margin.Render(bubble)
}

// =============================================================================
// BOT BUBBLE - left-aligned, may carry a card
// =============================================================================

func (b *MessageBubble) renderBotBubble() string {
	var parts []string

	header := b.theme.Timestamp.Render(b.Message.Sender.DisplayName())
	if b.ShowTimestamp {
		header += " " + b.theme.Timestamp.Render(b.Message.Timestamp.Format("15:04"))
	}
	parts = append(parts, header)

	if b.Message.HasText() {
		maxContentWidth := b.Width - 12
		if maxContentWidth < 20 {
			maxContentWidth = 20
		}
		wrapped := wordWrap(b.Message.Text, maxContentWidth)
		contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)
		parts = append(parts, b.theme.BotBubble.Width(contentWidth).Render(wrapped))
	}

	if b.Message.Fragment != nil {
		parts = append(parts, b.Message.Fragment.Render(b.Width))
	}

	return strings.Join(parts, "\n")
}
