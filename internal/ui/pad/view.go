// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pad

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// View renders the calculator area. In narrow terminals the history panel
// is dropped entirely; otherwise it sits beside the keypad.
func (m *Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.display.View(),
		m.keypad.View(),
	)

	if !m.showHistory || m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return left
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		" ",
		m.history.View(),
	)
}
