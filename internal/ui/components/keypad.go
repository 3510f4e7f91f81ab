// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the calcpad TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/calcpad-tui/internal/calc"
	"github.com/jeranaias/calcpad-tui/internal/ui/styles"
)

// =============================================================================
// KEYPAD COMPONENT - Navigable calculator key grid
// =============================================================================

// Accent selects which theme style a key face is rendered with. The accent is
// purely cosmetic; key behavior is decided by calc.Classify.
type Accent int

const (
	AccentDigit Accent = iota
	AccentOperator
	AccentFunction
	AccentClear
	AccentEquals
)

// Key is a single keypad cell.
type Key struct {
	Label  string
	Kind   calc.KeyKind
	Accent Accent
}

// DefaultLayout returns the standard calcpad key grid, top row first. The
// final row holds the full-width equals key.
func DefaultLayout() [][]Key {
	row := func(keys ...Key) []Key { return keys }
	digit := func(label string) Key {
		return Key{Label: label, Kind: calc.Classify(label), Accent: AccentDigit}
	}
	op := func(label string) Key {
		return Key{Label: label, Kind: calc.Classify(label), Accent: AccentOperator}
	}
	fn := func(label string) Key {
		return Key{Label: label, Kind: calc.Classify(label), Accent: AccentFunction}
	}

	return [][]Key{
		row(
			Key{Label: calc.KeyAllClear, Kind: calc.KindAllClear, Accent: AccentClear},
			Key{Label: calc.KeyDelete, Kind: calc.KindDelete, Accent: AccentClear},
			digit("("), digit(")"),
		),
		row(fn("sin"), fn("cos"), fn("tan"), fn(calc.KeySqrt)),
		row(digit("7"), digit("8"), digit("9"), op("/")),
		row(digit("4"), digit("5"), digit("6"), op("*")),
		row(digit("1"), digit("2"), digit("3"), op("-")),
		row(digit("0"), digit(calc.KeyDecimal), op("%"), op("+")),
		row(Key{Label: calc.KeyEquals, Kind: calc.KindEquals, Accent: AccentEquals}),
	}
}

// Keypad is the navigable key grid. A cursor tracks the highlighted key;
// arrow movement clamps at the grid edges rather than wrapping.
type Keypad struct {
	rows    [][]Key
	cursorR int
	cursorC int
	width   int
	focused bool
	theme   *styles.Theme
}

// NewKeypad creates a keypad with the default layout.
func NewKeypad(theme *styles.Theme) *Keypad {
	return &Keypad{
		rows:    DefaultLayout(),
		width:   40,
		focused: true,
		theme:   theme,
	}
}

// SetSize updates the available width.
func (k *Keypad) SetSize(width int) {
	k.width = width
}

// Focus marks the keypad as the active panel.
func (k *Keypad) Focus() { k.focused = true }

// Blur removes focus.
func (k *Keypad) Blur() { k.focused = false }

// Focused reports whether the keypad is the active panel.
func (k *Keypad) Focused() bool { return k.focused }

// Current returns the key under the cursor.
func (k *Keypad) Current() Key {
	return k.rows[k.cursorR][k.cursorC]
}

// MoveUp moves the cursor up one row, clamping the column to the new row.
func (k *Keypad) MoveUp() {
	if k.cursorR > 0 {
		k.cursorR--
		k.clampCol()
	}
}

// MoveDown moves the cursor down one row, clamping the column to the new row.
func (k *Keypad) MoveDown() {
	if k.cursorR < len(k.rows)-1 {
		k.cursorR++
		k.clampCol()
	}
}

// MoveLeft moves the cursor left within the row.
func (k *Keypad) MoveLeft() {
	if k.cursorC > 0 {
		k.cursorC--
	}
}

// MoveRight moves the cursor right within the row.
func (k *Keypad) MoveRight() {
	if k.cursorC < len(k.rows[k.cursorR])-1 {
		k.cursorC++
	}
}

func (k *Keypad) clampCol() {
	if max := len(k.rows[k.cursorR]) - 1; k.cursorC > max {
		k.cursorC = max
	}
}

// FindByRune maps a typed character to its keypad key, allowing direct
// typing alongside cursor navigation. Returns false for characters with no
// key, including letters (functions are multi-rune labels reached by
// navigation only).
func (k *Keypad) FindByRune(r rune) (Key, bool) {
	label := string(r)
	for _, row := range k.rows {
		for _, key := range row {
			if key.Label == label {
				return key, true
			}
		}
	}
	return Key{}, false
}

// styleFor resolves a key's accent to its theme style.
func (k *Keypad) styleFor(key Key) lipgloss.Style {
	switch key.Accent {
	case AccentOperator:
		return k.theme.KeyOperator
	case AccentFunction:
		return k.theme.KeyFunction
	case AccentClear:
		return k.theme.KeyClear
	case AccentEquals:
		return k.theme.KeyEquals
	default:
		return k.theme.Key
	}
}

// View renders the key grid.
func (k *Keypad) View() string {
	// Cell width leaves room for the style's own horizontal padding.
	cellWidth := k.width/4 - 3
	if cellWidth < 3 {
		cellWidth = 3
	}

	var rows []string
	for r, row := range k.rows {
		cells := make([]string, 0, len(row))
		for c, key := range row {
			style := k.styleFor(key)
			if k.focused && r == k.cursorR && c == k.cursorC {
				style = k.theme.KeyCursor
			}

			w := cellWidth
			if len(row) == 1 {
				// Full-width key (equals row)
				w = (cellWidth+3)*4 - 3
			}
			cells = append(cells, style.Width(w).Render(key.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(cells, " ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
