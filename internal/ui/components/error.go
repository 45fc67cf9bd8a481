// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"errors"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner renders a backend or validation failure inside the
// transcript, with a short suggestion of what to try next.
type ErrorBanner struct {
	Title      string
	Message    string
	Suggestion string
	theme      *styles.Theme
}

// NewErrorBanner creates a banner with a generic title.
func NewErrorBanner(theme *styles.Theme, message string) *ErrorBanner {
	return &ErrorBanner{
		Title:   "Something went wrong",
		Message: message,
		theme:   theme,
	}
}

// NewErrorBannerFromErr maps a client error onto user-facing copy. The
// backend's detail string is shown when present; transport noise is not.
func NewErrorBannerFromErr(theme *styles.Theme, err error) *ErrorBanner {
	b := &ErrorBanner{
		Title: "Something went wrong",
		theme: theme,
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		b.Message = apiErr.Detail
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		b.Title = "Session expired"
		b.Suggestion = "Please log in again."
	case errors.Is(err, api.ErrForbidden):
		b.Title = "Not available"
	case errors.Is(err, api.ErrNotFound):
		b.Title = "Not found"
		b.Suggestion = "Check the details and try again."
	case errors.Is(err, api.ErrInvalidInput):
		b.Title = "Invalid input"
		b.Suggestion = "Check the details and try again."
	case errors.Is(err, api.ErrRateLimited):
		b.Title = "Slow down"
		b.Suggestion = "Please wait a moment before retrying."
	case errors.Is(err, api.ErrServer):
		b.Title = "Service unavailable"
		b.Suggestion = "Please try again shortly."
	default:
		if b.Message == "" {
			b.Message = "Could not reach the Haven service."
		}
		b.Suggestion = "Check your connection and try again."
	}

	if b.Message == "" {
		b.Message = b.Title
	}
	return b
}

// Render draws the banner at the given width. ErrorBanner implements
// model.Fragment so it can ride in the transcript like any card.
func (b *ErrorBanner) Render(width int) string {
	inner := cardInnerWidth(width)

	content := styles.RenderError(b.Title) + "\n" +
		b.theme.ErrorMessage.Render(wordWrap(b.Message, inner))
	if b.Suggestion != "" {
		content += "\n" + b.theme.SystemNotice.Render(b.Suggestion)
	}

	return b.theme.ErrorBox.Width(minInt(width-4, inner+4)).Render(content)
}
