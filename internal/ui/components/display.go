// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/calc"
	"github.com/jeranaias/calcpad-tui/internal/eval"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
	"github.com/jeranaias/calcpad-tui/internal/util"
)

// =============================================================================
// DISPLAY COMPONENT - Expression line plus live preview
// =============================================================================

// Display renders the calculator's two-line readout: the raw expression on
// top and the partial value beneath it. In result mode only the finalized
// value is shown. Content is right-aligned like a desk calculator, with long
// expressions truncated from the left so the insertion point stays visible.
type Display struct {
	expression  string
	partial     string
	mode        calc.DisplayMode
	showPreview bool
	groupDigits bool
	width       int
	theme       *styles.Theme
}

// NewDisplay creates a display component.
func NewDisplay(theme *styles.Theme) *Display {
	return &Display{
		showPreview: true,
		width:       40,
		theme:       theme,
	}
}

// SetSize updates the available width.
func (d *Display) SetSize(width int) {
	d.width = width
}

// SetShowPreview toggles the partial value line.
func (d *Display) SetShowPreview(show bool) {
	d.showPreview = show
}

// SetGroupDigits toggles thousands separators on rendered values. The
// underlying expression string stays ungrouped so editing continues from
// evaluator-valid text.
func (d *Display) SetGroupDigits(group bool) {
	d.groupDigits = group
}

// SetContent updates the displayed expression state.
func (d *Display) SetContent(expression, partial string, mode calc.DisplayMode) {
	d.expression = expression
	d.partial = partial
	d.mode = mode
}

// View renders the display box.
func (d *Display) View() string {
	// Inner width inside the box border and padding.
	inner := d.width - 6
	if inner < 8 {
		inner = 8
	}

	expr := d.expression
	if expr == "" {
		expr = "0"
	}
	if d.groupDigits && d.mode == calc.ModeResult {
		expr = eval.GroupString(expr)
	}
	expr = util.TruncateLeft(expr, inner)

	var exprLine string
	switch {
	case d.expression == calc.ErrorValue:
		exprLine = d.theme.DisplayError.Render(util.PadLeft(expr, inner))
	case d.mode == calc.ModeResult:
		exprLine = d.theme.DisplayResult.Render(util.PadLeft(expr, inner))
	default:
		exprLine = d.theme.DisplayExpression.Render(util.PadLeft(expr, inner))
	}

	// Preview line stays present even when empty so the box height is
	// stable while typing.
	partial := ""
	if d.showPreview && d.mode == calc.ModeEditing {
		partial = d.partial
		if d.groupDigits {
			partial = eval.GroupString(partial)
		}
		partial = util.TruncateLeft(partial, inner)
	}
	partialLine := d.theme.DisplayPartial.Render(util.PadLeft(partial, inner))

	box := lipgloss.JoinVertical(lipgloss.Right, exprLine, partialLine)
	return d.theme.DisplayBox.Width(d.width - 2).Render(box)
}
