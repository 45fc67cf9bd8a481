// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package themes provides the destination theme table for the Haven widget.
//
// Each theme is a named palette of six semantic color slots plus an
// optional background texture token, keyed by destination country. Lookup
// accepts either a 2-letter uppercase ISO code or a free-text country
// name; anything unrecognized resolves to the default palette.
package themes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME TYPE
// =============================================================================

// Palette holds the six semantic color slots of a theme.
type Palette struct {
	Primary    lipgloss.Color // Headers, user bubbles, emphasis
	Secondary  lipgloss.Color // Secondary actions, borders
	Accent     lipgloss.Color // Badges, selections
	Highlight  lipgloss.Color // Prices, callouts
	Background lipgloss.Color // Widget surface
	Text       lipgloss.Color // Body text
}

// Theme is an immutable destination palette. Applied as a cross-cutting
// style context for the lifetime of the open widget.
type Theme struct {
	Name    string
	Colors  Palette
	Texture string // Optional header texture token ("sakura", "taegeuk", ...)
}

// HasTexture returns true if the theme carries a background texture.
func (t Theme) HasTexture() bool {
	return t.Texture != ""
}

// =============================================================================
// DEFAULT PALETTE
// =============================================================================

// Default is the palette used when no destination matches.
var Default = Theme{
	Name: "Default",
	Colors: Palette{
		Primary:    "#6ED3B5", // mint green
		Secondary:  "#4A90E2", // deep sky blue
		Accent:     "#CBA6F7", // soft lavender
		Highlight:  "#FFCBA4", // warm peach
		Background: "#F9F9F9",
		Text:       "#4B4B4B",
	},
}

// =============================================================================
// COUNTRY PALETTES
// =============================================================================

// themesByCode maps 2-letter uppercase country codes to themes.
var themesByCode = map[string]Theme{
	// Asia-Pacific
	"AU": {Name: "Australia", Colors: Palette{Primary: "#FFB300", Secondary: "#0072C6", Accent: "#00A651", Highlight: "#E94B3C", Background: "#FFF8E1", Text: "#222222"}, Texture: "crosses"},
	"CN": {Name: "China", Colors: Palette{Primary: "#DE2910", Secondary: "#FFDE00", Accent: "#8A1538", Highlight: "#D4AF37", Background: "#FFF5E6", Text: "#222222"}},
	"HK": {Name: "Hong Kong", Colors: Palette{Primary: "#C8102E", Secondary: "#FFFFFF", Accent: "#0072BC", Highlight: "#F2C100", Background: "#F5F5F5", Text: "#000000"}},
	"IN": {Name: "India", Colors: Palette{Primary: "#FF9933", Secondary: "#138808", Accent: "#FFFFFF", Highlight: "#000080", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"ID": {Name: "Indonesia", Colors: Palette{Primary: "#E30613", Secondary: "#FFFFFF", Accent: "#0066B3", Highlight: "#009639", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"IL": {Name: "Israel", Colors: Palette{Primary: "#0038B8", Secondary: "#FFFFFF", Accent: "#007A33", Highlight: "#D9D9D9", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"JP": {Name: "Japan", Colors: Palette{Primary: "#BC002D", Secondary: "#FFFFFF", Accent: "#000000", Highlight: "#F4D5B3", Background: "#FFF5F5", Text: "#222222"}, Texture: "sakura"},
	"LA": {Name: "Laos", Colors: Palette{Primary: "#002868", Secondary: "#FFD700", Accent: "#A52A2A", Highlight: "#87CEEB", Background: "#F5F5F5", Text: "#222222"}},
	"MO": {Name: "Macau", Colors: Palette{Primary: "#FFD700", Secondary: "#C8102E", Accent: "#000000", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#222222"}},
	"MY": {Name: "Malaysia", Colors: Palette{Primary: "#014B87", Secondary: "#E30A17", Accent: "#FFD700", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"PH": {Name: "Philippines", Colors: Palette{Primary: "#0038A8", Secondary: "#CE1126", Accent: "#FCD116", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"SA": {Name: "Saudi Arabia", Colors: Palette{Primary: "#006C35", Secondary: "#FFFFFF", Accent: "#C0B283", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"KR": {Name: "South Korea", Colors: Palette{Primary: "#003478", Secondary: "#C60C30", Accent: "#FFFFFF", Highlight: "#F7F7F7", Background: "#F5F5F5", Text: "#222222"}, Texture: "taegeuk"},
	"TW": {Name: "Taiwan", Colors: Palette{Primary: "#FF0000", Secondary: "#0000FF", Accent: "#FFFF00", Highlight: "#FFFFFF", Background: "#FFF5F5", Text: "#222222"}},
	"TH": {Name: "Thailand", Colors: Palette{Primary: "#0072BC", Secondary: "#FECB00", Accent: "#E30613", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"VN": {Name: "Vietnam", Colors: Palette{Primary: "#DA251D", Secondary: "#FFDE00", Accent: "#008000", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#4B4B4B"}},

	// Europe, Middle East, Africa
	"AL": {Name: "Albania", Colors: Palette{Primary: "#E41B17", Secondary: "#000000", Accent: "#FFD700", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"BE": {Name: "Belgium", Colors: Palette{Primary: "#FFD100", Secondary: "#000000", Accent: "#FF0000", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#222222"}},
	"BG": {Name: "Bulgaria", Colors: Palette{Primary: "#00966E", Secondary: "#FFFFFF", Accent: "#FF0000", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"CY": {Name: "Cyprus", Colors: Palette{Primary: "#0073CF", Secondary: "#FFD700", Accent: "#FFFFFF", Highlight: "#008000", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"DK": {Name: "Denmark", Colors: Palette{Primary: "#C60C30", Secondary: "#FFFFFF", Accent: "#002868", Highlight: "#F7F7F7", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"EG": {Name: "Egypt", Colors: Palette{Primary: "#CE7B00", Secondary: "#000000", Accent: "#FFFFFF", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#4B4B4B"}},
	"FR": {Name: "France", Colors: Palette{Primary: "#0055A4", Secondary: "#EF4135", Accent: "#FFFFFF", Highlight: "#F7F7F7", Background: "#F5F5F5", Text: "#222222"}, Texture: "grid"},
	"DE": {Name: "Germany", Colors: Palette{Primary: "#000000", Secondary: "#FFCE00", Accent: "#DD0000", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#222222"}},
	"GR": {Name: "Greece", Colors: Palette{Primary: "#0D5EAF", Secondary: "#FFFFFF", Accent: "#FFDE00", Highlight: "#000000", Background: "#F5F5F5", Text: "#222222"}},
	"IT": {Name: "Italy", Colors: Palette{Primary: "#008C45", Secondary: "#F4F5F0", Accent: "#CD212A", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#222222"}, Texture: "blocks"},
	"RU": {Name: "Russia", Colors: Palette{Primary: "#D52B1E", Secondary: "#FFFFFF", Accent: "#0033A0", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#222222"}},
	"RO": {Name: "Romania", Colors: Palette{Primary: "#002B7F", Secondary: "#FBE100", Accent: "#D81E05", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#222222"}},
	"ES": {Name: "Spain", Colors: Palette{Primary: "#AA151B", Secondary: "#F1BF00", Accent: "#000000", Highlight: "#FFFFFF", Background: "#F5F5F5", Text: "#222222"}},
	"SE": {Name: "Sweden", Colors: Palette{Primary: "#005CBF", Secondary: "#FECC00", Accent: "#FFFFFF", Highlight: "#000000", Background: "#F5F5F5", Text: "#222222"}},
	"CH": {Name: "Switzerland", Colors: Palette{Primary: "#FF0000", Secondary: "#FFFFFF", Accent: "#000000", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#222222"}},
	"TR": {Name: "Turkey", Colors: Palette{Primary: "#E30A17", Secondary: "#FFFFFF", Accent: "#008000", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#222222"}},
	"GB": {Name: "United Kingdom", Colors: Palette{Primary: "#012169", Secondary: "#C8102E", Accent: "#E0E0E0", Highlight: "#FFD700", Background: "#F5F5F5", Text: "#222222"}, Texture: "curls"},
}

// codesByName maps lowercase country names to codes.
var codesByName = map[string]string{
	"australia":      "AU",
	"china":          "CN",
	"hong kong":      "HK",
	"india":          "IN",
	"indonesia":      "ID",
	"israel":         "IL",
	"japan":          "JP",
	"laos":           "LA",
	"macau":          "MO",
	"malaysia":       "MY",
	"philippines":    "PH",
	"saudi arabia":   "SA",
	"south korea":    "KR",
	"taiwan":         "TW",
	"thailand":       "TH",
	"vietnam":        "VN",
	"albania":        "AL",
	"belgium":        "BE",
	"bulgaria":       "BG",
	"cyprus":         "CY",
	"denmark":        "DK",
	"egypt":          "EG",
	"france":         "FR",
	"germany":        "DE",
	"greece":         "GR",
	"italy":          "IT",
	"russia":         "RU",
	"romania":        "RO",
	"spain":          "ES",
	"sweden":         "SE",
	"switzerland":    "CH",
	"turkey":         "TR",
	"united kingdom": "GB",
}

// =============================================================================
// LOOKUP
// =============================================================================

// ForCountry resolves a destination to its theme. The input may be an exact
// 2-letter uppercase country code or a free-text country name; unknown
// destinations fall back to the default palette. Pure and idempotent.
func ForCountry(nameOrCode string) Theme {
	if isCountryCode(nameOrCode) {
		if theme, ok := themesByCode[nameOrCode]; ok {
			return theme
		}
	}

	if code, ok := codesByName[strings.ToLower(strings.TrimSpace(nameOrCode))]; ok {
		if theme, ok := themesByCode[code]; ok {
			return theme
		}
	}

	return Default
}

// ForCountryCode resolves a 2-letter code directly, defaulting when unknown.
func ForCountryCode(code string) Theme {
	if theme, ok := themesByCode[code]; ok {
		return theme
	}
	return Default
}

// isCountryCode reports whether s is exactly two uppercase ASCII letters.
func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
