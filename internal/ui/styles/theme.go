// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the calcpad TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// DISPLAY STYLES
	// ==========================================================================

	DisplayBox        lipgloss.Style
	DisplayExpression lipgloss.Style
	DisplayPartial    lipgloss.Style
	DisplayResult     lipgloss.Style
	DisplayError      lipgloss.Style

	// ==========================================================================
	// KEYPAD STYLES
	// ==========================================================================

	Key         lipgloss.Style
	KeyOperator lipgloss.Style
	KeyFunction lipgloss.Style
	KeyClear    lipgloss.Style
	KeyEquals   lipgloss.Style
	KeyCursor   lipgloss.Style

	// ==========================================================================
	// HISTORY PANEL STYLES
	// ==========================================================================

	HistoryBox          lipgloss.Style
	HistoryBoxFocused   lipgloss.Style
	HistoryTitle        lipgloss.Style
	HistoryItem         lipgloss.Style
	HistoryItemSelected lipgloss.Style
	HistoryResult       lipgloss.Style
	HistoryEmpty        lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ModeEditing  lipgloss.Style
	ModeResult   lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
//
// preference is the configured theme: "dark", "light", or "auto". When a
// preference is forced, Lip Gloss's background detection is overridden so
// every AdaptiveColor resolves against the chosen palette.
func NewTheme(preference string) *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	isDark := termenv.HasDarkBackground()
	switch strings.ToLower(preference) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Display
	t.DisplayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2)

	t.DisplayExpression = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.DisplayPartial = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.DisplayResult = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.DisplayError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Keypad
	t.Key = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceBright).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.KeyOperator = lipgloss.NewStyle().
		Foreground(Cyan).
		Background(SurfaceBright).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.KeyFunction = lipgloss.NewStyle().
		Foreground(Amber).
		Background(SurfaceBright).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.KeyClear = lipgloss.NewStyle().
		Foreground(Rose).
		Background(SurfaceBright).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.KeyEquals = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.KeyCursor = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	// History panel
	t.HistoryBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HistoryBoxFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.HistoryTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.HistoryItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.HistoryItemSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Foreground(TextPrimary).
		Bold(true).
		Padding(0, 1)

	t.HistoryResult = lipgloss.NewStyle().
		Foreground(Emerald)

	t.HistoryEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ModeEditing = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ModeResult = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.HelpTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
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
