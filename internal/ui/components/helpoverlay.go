// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY COMPONENT - Keyboard reference rendered from markdown
// =============================================================================

const helpMarkdown = `## Keys

| Key | Action |
|-----|--------|
| 0-9 . ( ) | Type directly into the expression |
| + - * / % | Operators |
| Enter | Press highlighted key / finalize with = |
| Backspace | Delete last character (C) |
| Esc | Clear everything (AC) |
| Arrows | Move the keypad cursor |
| Tab | Switch between keypad and history |
| h | Toggle the history panel |
| ? | Toggle this help |
| q | Quit |

## History

Select a previous calculation with the arrow keys and press Enter to bring
its expression back for editing. The log itself is never changed by
selection.

## Preview

While typing, the value beneath the expression is a live preview of the
result so far. It disappears whenever the expression is incomplete.
`

// HelpOverlay renders the keyboard reference over the main view. The
// markdown is rendered once per resize and cached.
type HelpOverlay struct {
	visible  bool
	width    int
	height   int
	rendered string
	theme    *styles.Theme
}

// NewHelpOverlay creates a help overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	return &HelpOverlay{
		width:  60,
		height: 20,
		theme:  theme,
	}
}

// SetSize updates the overlay dimensions and invalidates the cache.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.rendered = ""
}

// Toggle flips visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the overlay is shown.
func (h *HelpOverlay) Visible() bool {
	return h.visible
}

// View renders the overlay box.
func (h *HelpOverlay) View() string {
	if h.rendered == "" {
		h.rendered = h.render()
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		h.theme.HelpTitle.Render("calcpad help"),
		h.rendered,
	)
	return h.theme.HelpBox.Render(body)
}

// render converts the help markdown for the current terminal.
func (h *HelpOverlay) render() string {
	wrap := h.width - 8
	if wrap < 30 {
		wrap = 30
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		// Fall back to the raw markdown if renderer initialization fails
		return helpMarkdown
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
