// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Haven TUI.
//
// # Overview
//
// Every visual element draws its colors from a destination palette
// (internal/themes). The Theme type holds one configured lipgloss style
// per element; Apply restyles the whole set when the user's destination
// resolves, so the widget changes its look mid-conversation.
//
// # Key Types
//
//   - Theme: The complete style set, built from a themes.Theme palette
//   - SpinnerConfig: Frame-based spinner animations (typing, fetching)
//   - StatusIndicatorSet: ASCII shape indicators alongside status colors
//
// # Usage
//
//	theme := styles.NewTheme(themes.Default)
//	// ... destination resolves to Japan ...
//	theme.Apply(themes.ForCountry("JP"))
//
// Neutral surface and text colors use lipgloss.AdaptiveColor so light and
// dark terminals both stay readable regardless of the active palette.
package styles
