// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Haven TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/havenlabs/haven-tui/internal/themes"
)

// Theme holds all the styled components for the application, built from a
// destination palette. When the user's destination resolves, Apply restyles
// the set in place; everything rendered afterwards picks up the new colors.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// Palette is the destination theme currently applied.
	Palette themes.Theme

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble   lipgloss.Style
	BotBubble    lipgloss.Style
	SystemNotice lipgloss.Style
	Timestamp    lipgloss.Style

	// ==========================================================================
	// CARD STYLES
	// ==========================================================================

	Card             lipgloss.Style
	CardTitle        lipgloss.Style
	CardLabel        lipgloss.Style
	CardValue        lipgloss.Style
	CardButton       lipgloss.Style
	CardButtonActive lipgloss.Style
	BestMatchBadge   lipgloss.Style
	Price            lipgloss.Style
	ProsItem         lipgloss.Style
	ConsItem         lipgloss.Style
	Citation         lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputDisabled    lipgloss.Style

	// ==========================================================================
	// FORM STYLES (login, manual trip entry)
	// ==========================================================================

	FormLabel   lipgloss.Style
	FormField   lipgloss.Style
	FormFocused lipgloss.Style
	FormError   lipgloss.Style

	// ==========================================================================
	// STATUS AND FEEDBACK STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	TypingText   lipgloss.Style
	ErrorBox     lipgloss.Style
	ErrorMessage lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SHELL STYLES (landing, launcher)
	// ==========================================================================

	WelcomeBox     lipgloss.Style
	WelcomeTitle   lipgloss.Style
	WelcomeInfo    lipgloss.Style
	LauncherButton lipgloss.Style
}

// NewTheme creates a style set from the given destination palette.
func NewTheme(palette themes.Theme) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.Apply(palette)
	return t
}

// Apply restyles the whole set from a new destination palette. Callers keep
// their *Theme pointer; subsequent renders use the new colors.
func (t *Theme) Apply(palette themes.Theme) {
	t.Palette = palette
	t.initStyles()
}

// initStyles initializes all the lip gloss styles from the current palette.
func (t *Theme) initStyles() {
	colors := t.Palette.Colors

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colors.Primary).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Primary)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(colors.Primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colors.Primary).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colors.Secondary).
		Padding(0, 2).
		MarginRight(4)

	t.SystemNotice = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colors.Secondary).
		Padding(1, 2)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Primary)

	t.CardLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(14)

	t.CardValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CardButton = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.CardButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(colors.Primary).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	t.BestMatchBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(colors.Accent).
		Bold(true).
		Padding(0, 1)

	t.Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Highlight)

	t.ProsItem = lipgloss.NewStyle().
		Foreground(SuccessHighContrast)

	t.ConsItem = lipgloss.NewStyle().
		Foreground(WarningHighContrast)

	t.Citation = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(colors.Primary).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Strikethrough(false).
		Italic(true)

	// Forms
	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(16)

	t.FormField = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FormFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colors.Primary).
		Padding(0, 1)

	t.FormError = lipgloss.NewStyle().
		Foreground(ErrorHighContrast)

	// Status and feedback
	t.Spinner = lipgloss.NewStyle().
		Foreground(colors.Primary)

	t.TypingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(ErrorHighContrast).
		Padding(1, 2)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(colors.Primary).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Shell
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(colors.Primary).
		Padding(2, 4).
		Align(lipgloss.Center)

	t.WelcomeTitle = lipgloss.NewStyle().
		Foreground(colors.Primary).
		Bold(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.LauncherButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(colors.Primary).
		Bold(true).
		Padding(0, 2)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// =============================================================================
// TEXTURE RENDERING
// =============================================================================

// textureGlyphs maps theme texture tokens to their repeating header glyphs.
var textureGlyphs = map[string]string{
	"sakura":  "*",
	"crosses": "+",
	"taegeuk": "o",
	"grid":    "#",
	"blocks":  "=",
	"curls":   "~",
}

// TextureRow renders a one-line background texture for themes that carry
// one. Returns an empty string for textureless themes.
func (t *Theme) TextureRow(width int) string {
	glyph, ok := textureGlyphs[t.Palette.Texture]
	if !ok || width <= 0 {
		return ""
	}
	// Glyph every fourth column reads as a pattern, not noise.
	row := strings.Repeat(glyph+"   ", width/4)
	if len(row) > width {
		row = row[:width]
	}
	style := lipgloss.NewStyle().Foreground(t.Palette.Colors.Secondary).Faint(true)
	return style.Render(row)
}
