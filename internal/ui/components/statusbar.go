// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/calc"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Mode badge, precision, and key hints
// =============================================================================

// StatusBar is the bottom status line.
type StatusBar struct {
	Mode          calc.DisplayMode
	Precision     int
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Mode:          calc.ModeEditing,
		Precision:     3,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetSize updates the available width.
func (s *StatusBar) SetSize(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var badge string
	switch s.Mode {
	case calc.ModeResult:
		badge = s.theme.ModeResult.Render(s.Mode.String())
	default:
		badge = s.theme.ModeEditing.Render(s.Mode.String())
	}

	left := fmt.Sprintf("%s  prec:%d", badge, s.Precision)

	right := ""
	if s.ShowShortcuts {
		hints := []string{
			s.theme.ShortcutKey.Render("tab") + s.theme.ShortcutDesc.Render(" history"),
			s.theme.ShortcutKey.Render("?") + s.theme.ShortcutDesc.Render(" help"),
			s.theme.ShortcutKey.Render("q") + s.theme.ShortcutDesc.Render(" quit"),
		}
		right = strings.Join(hints, "  ")
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	line := left + strings.Repeat(" ", gap) + right
	return s.theme.StatusBar.Width(s.Width).Render(line)
}
