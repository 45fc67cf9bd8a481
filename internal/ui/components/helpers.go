// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
package components

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/havenlabs/haven-tui/internal/util"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount with its currency code and thousand
// separators, e.g. "SGD 1,234.50".
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "SGD"
	}
	return pricePrinter.Sprintf("%s %.2f", currency, amount)
}

// wordWrap wraps text to the given width, breaking on spaces where
// possible. Width is measured in display cells, not bytes.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, width))
	}
	return result.String()
}

// wrapLine wraps a single line (no newlines) to the given width.
func wrapLine(line string, width int) string {
	if util.StringWidth(line) <= width {
		return line
	}

	var result strings.Builder
	var current string

	for _, word := range strings.Fields(line) {
		if current == "" {
			current = word
			continue
		}
		if util.StringWidth(current)+1+util.StringWidth(word) <= width {
			current += " " + word
			continue
		}
		result.WriteString(current)
		result.WriteString("\n")
		current = word
	}
	result.WriteString(current)
	return result.String()
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// cardInnerWidth clamps the usable content width inside a card border.
func cardInnerWidth(width int) int {
	inner := width - 6
	if inner < 24 {
		inner = 24
	}
	return inner
}

// pluralize returns the singular or plural form based on count.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
