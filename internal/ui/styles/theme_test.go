// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/havenlabs/haven-tui/internal/themes"
)

func TestNewThemeUsesPalette(t *testing.T) {
	theme := NewTheme(themes.ForCountry("JP"))

	if theme.Palette.Name != "Japan" {
		t.Errorf("expected Japan palette, got %q", theme.Palette.Name)
	}
	if got := theme.HeaderTitle.GetForeground(); got != theme.Palette.Colors.Primary {
		t.Errorf("header title should use palette primary, got %v", got)
	}
	if got := theme.Price.GetForeground(); got != theme.Palette.Colors.Highlight {
		t.Errorf("price should use palette highlight, got %v", got)
	}
}

func TestApplyRestylesInPlace(t *testing.T) {
	theme := NewTheme(themes.Default)
	before := theme.UserBubble.GetBackground()

	theme.Apply(themes.ForCountry("TH"))

	if theme.Palette.Name != "Thailand" {
		t.Errorf("expected Thailand palette after Apply, got %q", theme.Palette.Name)
	}
	after := theme.UserBubble.GetBackground()
	if before == after {
		t.Error("Apply should restyle the user bubble background")
	}
}

func TestLayoutModeThresholds(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme(themes.Default)
	for _, tt := range tests {
		theme.SetSize(tt.width, 40)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("width %d: expected layout %v, got %v", tt.width, tt.want, got)
		}
	}
}

func TestTextureRow(t *testing.T) {
	japan := NewTheme(themes.ForCountry("JP"))
	row := japan.TextureRow(40)
	if row == "" {
		t.Fatal("Japan theme should render a texture row")
	}
	if !strings.Contains(row, "*") {
		t.Errorf("sakura texture should use * glyphs, got %q", row)
	}

	plain := NewTheme(themes.Default)
	if got := plain.TextureRow(40); got != "" {
		t.Errorf("default theme has no texture, got %q", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"empty", 4, 0, "----"},
		{"half", 4, 50, "##--"},
		{"full", 4, 100, "####"},
		{"clamped high", 4, 150, "####"},
		{"clamped low", 4, -10, "----"},
		{"zero width", 0, 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderProgressBar(tt.width, tt.percent); got != tt.want {
				t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tt.width, tt.percent, got, tt.want)
			}
		})
	}
}

func TestStatusRenderersIncludeShapes(t *testing.T) {
	if got := RenderSuccess("saved"); !strings.Contains(got, "[OK]") {
		t.Errorf("success indicator missing: %q", got)
	}
	if got := RenderError("failed"); !strings.Contains(got, "[X]") {
		t.Errorf("error indicator missing: %q", got)
	}
	if got := RenderWarning("careful"); !strings.Contains(got, "[!]") {
		t.Errorf("warning indicator missing: %q", got)
	}
}

func TestSpinnerDuration(t *testing.T) {
	if DotsSpinner.Duration() <= 0 {
		t.Error("spinner duration must be positive")
	}
	if LineSpinner.Duration() >= DotsSpinner.Duration() {
		t.Error("faster spinner should have shorter frame duration")
	}
}
