// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/history"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
	"github.com/jeranaias/calcpad-tui/internal/util"
)

// =============================================================================
// HISTORY PANEL COMPONENT - Scrollable calculation log
// =============================================================================

// HistoryPanel lists completed calculations newest-last, with a cursor for
// selecting a record to restore. Selection never mutates the log.
type HistoryPanel struct {
	viewport viewport.Model
	records  []history.Record
	cursor   int
	width    int
	height   int
	focused  bool
	theme    *styles.Theme
}

// NewHistoryPanel creates a history panel.
func NewHistoryPanel(theme *styles.Theme) *HistoryPanel {
	vp := viewport.New(30, 10)
	vp.Style = lipgloss.NewStyle()

	return &HistoryPanel{
		viewport: vp,
		width:    30,
		height:   10,
		theme:    theme,
	}
}

// SetSize updates the panel dimensions.
func (h *HistoryPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.Width = width - 4   // Border and padding
	h.viewport.Height = height - 3 // Border plus title line
	h.updateContent()
}

// SetRecords replaces the displayed records (oldest first). The cursor
// follows the newest record so a fresh result is one keypress away.
func (h *HistoryPanel) SetRecords(records []history.Record) {
	h.records = records
	if len(records) == 0 {
		h.cursor = 0
	} else {
		h.cursor = len(records) - 1
	}
	h.updateContent()
	h.viewport.GotoBottom()
}

// Focus marks the panel as the active panel.
func (h *HistoryPanel) Focus() { h.focused = true }

// Blur removes focus.
func (h *HistoryPanel) Blur() { h.focused = false }

// Focused reports whether the panel is active.
func (h *HistoryPanel) Focused() bool { return h.focused }

// Len returns the number of listed records.
func (h *HistoryPanel) Len() int { return len(h.records) }

// MoveUp moves the cursor toward older records.
func (h *HistoryPanel) MoveUp() {
	if h.cursor > 0 {
		h.cursor--
		h.updateContent()
		h.scrollToCursor()
	}
}

// MoveDown moves the cursor toward newer records.
func (h *HistoryPanel) MoveDown() {
	if h.cursor < len(h.records)-1 {
		h.cursor++
		h.updateContent()
		h.scrollToCursor()
	}
}

// Selected returns the record under the cursor, if any.
func (h *HistoryPanel) Selected() (history.Record, bool) {
	if len(h.records) == 0 {
		return history.Record{}, false
	}
	return h.records[h.cursor], true
}

// scrollToCursor keeps the cursor row inside the visible window.
func (h *HistoryPanel) scrollToCursor() {
	top := h.viewport.YOffset
	bottom := top + h.viewport.Height - 1
	if h.cursor < top {
		h.viewport.SetYOffset(h.cursor)
	} else if h.cursor > bottom {
		h.viewport.SetYOffset(h.cursor - h.viewport.Height + 1)
	}
}

// updateContent re-renders the record list into the viewport.
func (h *HistoryPanel) updateContent() {
	if len(h.records) == 0 {
		h.viewport.SetContent(h.theme.HistoryEmpty.Render("no calculations yet"))
		return
	}

	inner := h.viewport.Width - 2
	if inner < 8 {
		inner = 8
	}

	lines := make([]string, 0, len(h.records))
	for i, rec := range h.records {
		entry := fmt.Sprintf("%s = %s",
			util.TruncateRight(rec.Expression, inner/2),
			h.theme.HistoryResult.Render(rec.Result))

		if h.focused && i == h.cursor {
			lines = append(lines, h.theme.HistoryItemSelected.Render(entry))
		} else {
			lines = append(lines, h.theme.HistoryItem.Render(entry))
		}
	}

	h.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// View renders the panel.
func (h *HistoryPanel) View() string {
	box := h.theme.HistoryBox
	if h.focused {
		box = h.theme.HistoryBoxFocused
	}

	title := h.theme.HistoryTitle.Render("History")
	body := lipgloss.JoinVertical(lipgloss.Left, title, h.viewport.View())
	return box.Width(h.width - 2).Render(body)
}
